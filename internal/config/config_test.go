package config

import (
	"os"
	"testing"
)

// chdir moves the test into dir and restores the previous working
// directory on cleanup. Stand-in for testing.T.Chdir, which needs a
// Go 1.24 toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Error(err)
		}
	})
}

func TestScriptForChoice(t *testing.T) {
	tests := []struct {
		name   string
		choice string
		want   string
	}{
		{"default choice", ChoiceMacZsh, "filecount.sh"},
		{"mac bash", ChoiceMacBash, "mac_linux_bash_filecount.sh"},
		{"windows", ChoiceWindows, "windows_filecount.ps1"},
		{"unknown falls back", "solaris", "filecount.sh"},
		{"empty falls back", "", "filecount.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScriptForChoice(tt.choice); got != tt.want {
				t.Errorf("ScriptForChoice(%q) = %q, want %q", tt.choice, got, tt.want)
			}
		})
	}
}

func TestLoadMissingFileUsesDefault(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FilecountScript != ChoiceMacZsh {
		t.Errorf("FilecountScript = %q, want %q", cfg.FilecountScript, ChoiceMacZsh)
	}
	if cfg.ScriptFile() != "filecount.sh" {
		t.Errorf("ScriptFile() = %q, want filecount.sh", cfg.ScriptFile())
	}
}

func TestLoadReadsChoice(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(ConfigFile, []byte("filecount_script = \"windows\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ScriptFile() != "windows_filecount.ps1" {
		t.Errorf("ScriptFile() = %q, want windows_filecount.ps1", cfg.ScriptFile())
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(ConfigFile, []byte("filecount_script = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded on malformed config, want error")
	}
}

func TestUnrecognizedChoiceMatchesNoConfig(t *testing.T) {
	// An unknown value must resolve to the same script as no file at all.
	chdir(t, t.TempDir())
	if err := os.WriteFile(ConfigFile, []byte("filecount_script = \"amiga\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := cfg.ScriptFile(), Default().ScriptFile(); got != want {
		t.Errorf("ScriptFile() = %q, want %q (same as default)", got, want)
	}
}
