package analyze

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/insaineyesay/mrkrabz/internal/config"
)

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/gin-gonic/gin.git", "gin"},
		{"https://github.com/gin-gonic/gin", "gin"},
		{"https://github.com/gin-gonic/gin/", "gin"},
		{"git@github.com:gin-gonic/gin.git", "gin"},
		{"gin", "gin"},
		{"", "repo"},
		{"///", "repo"},
	}
	for _, tt := range tests {
		if got := RepoNameFromURL(tt.url); got != tt.want {
			t.Errorf("RepoNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

// testRunner builds a Runner whose clone is a stub that just creates
// the target directory, recording the workspace path so tests can check
// it was removed. The script body replaces the bundled zsh script.
func testRunner(script string) (*Runner, *string) {
	workspace := new(string)
	r := &Runner{
		choice: config.ChoiceMacZsh,
		scripts: fstest.MapFS{
			"scripts/filecount.sh": &fstest.MapFile{Data: []byte(script)},
		},
		clone: func(ctx context.Context, repoURL, dir string) error {
			*workspace = filepath.Dir(dir)
			return os.MkdirAll(dir, 0o755)
		},
		timeout: 5 * time.Second,
	}
	return r, workspace
}

func assertRemoved(t *testing.T, workspace string) {
	t.Helper()
	if workspace == "" {
		t.Fatal("clone was never called")
	}
	if _, err := os.Stat(workspace); !os.IsNotExist(err) {
		t.Errorf("workspace %s still exists after Run", workspace)
	}
}

func TestRunParsesScriptOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test script needs a POSIX shell")
	}
	r, workspace := testRunner("#!/bin/sh\nprintf 'Code Files Count:\\n\\nGo|2|80\\n\\nTotal: 2 code files\\n'\n")

	report, err := r.Run(context.Background(), "https://github.com/user/fake.git")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Entries) != 1 || report.Entries[0].Language != "Go" {
		t.Errorf("entries = %+v, want one Go row", report.Entries)
	}
	if report.Total != 2 {
		t.Errorf("total = %d, want 2", report.Total)
	}
	assertRemoved(t, *workspace)
}

func TestRunScriptFailureCleansUp(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test script needs a POSIX shell")
	}
	r, workspace := testRunner("#!/bin/sh\necho boom >&2\nexit 3\n")

	_, err := r.Run(context.Background(), "https://github.com/user/fake.git")
	var aerr *Error
	if !errors.As(err, &aerr) || aerr.Kind != KindExecution {
		t.Fatalf("err = %v, want an execution error", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("err = %v, want the script's stderr included", err)
	}
	assertRemoved(t, *workspace)
}

func TestRunScriptTimeoutCleansUp(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test script needs a POSIX shell")
	}
	r, workspace := testRunner("#!/bin/sh\nwhile :; do :; done\n")
	r.timeout = 100 * time.Millisecond

	_, err := r.Run(context.Background(), "https://github.com/user/fake.git")
	var aerr *Error
	if !errors.As(err, &aerr) || aerr.Kind != KindExecution {
		t.Fatalf("err = %v, want an execution error", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("err = %v, want a timeout message", err)
	}
	assertRemoved(t, *workspace)
}

func TestRunCloneFailureCleansUp(t *testing.T) {
	r, workspace := testRunner("")
	r.clone = func(ctx context.Context, repoURL, dir string) error {
		*workspace = filepath.Dir(dir)
		return errors.New("remote hung up unexpectedly")
	}

	_, err := r.Run(context.Background(), "https://github.com/user/fake.git")
	var aerr *Error
	if !errors.As(err, &aerr) || aerr.Kind != KindClone {
		t.Fatalf("err = %v, want a clone error", err)
	}
	assertRemoved(t, *workspace)
}

func TestRunMissingScriptCleansUp(t *testing.T) {
	r, workspace := testRunner("")
	r.scripts = fstest.MapFS{}

	_, err := r.Run(context.Background(), "https://github.com/user/fake.git")
	var aerr *Error
	if !errors.As(err, &aerr) || aerr.Kind != KindStaging {
		t.Fatalf("err = %v, want a staging error", err)
	}
	assertRemoved(t, *workspace)
}

func TestBundledScriptsPresent(t *testing.T) {
	for _, name := range []string{"filecount.sh", "mac_linux_bash_filecount.sh", "windows_filecount.ps1"} {
		if _, err := scriptFS.ReadFile("scripts/" + name); err != nil {
			t.Errorf("script %s not embedded: %v", name, err)
		}
	}
}
