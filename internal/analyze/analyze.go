// Package analyze clones a repository into a throwaway workspace and
// runs a bundled per-language file-count script against it. The script
// choice comes from config, its text output goes through ParseReport,
// and the workspace is removed no matter how the pipeline ends.
package analyze

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/insaineyesay/mrkrabz/internal/config"
	"github.com/insaineyesay/mrkrabz/internal/types"
)

//go:embed scripts
var scriptFS embed.FS

const (
	execTimeout = 60 * time.Second
	scriptPerm  = 0o755

	// pipelineSteps is the number of phases Run reports progress for.
	pipelineSteps = 4
)

// ProgressFunc receives pipeline progress as each phase starts. step is
// 1-based and phase is one of "clone", "stage", "count", "parse".
type ProgressFunc func(step, total int, phase string)

// Runner executes the clone, count, cleanup pipeline for one repository
// at a time. The zero value is not usable; construct with NewRunner.
type Runner struct {
	choice   string
	scripts  fs.FS
	clone    func(ctx context.Context, repoURL, dir string) error
	timeout  time.Duration
	progress ProgressFunc
}

func NewRunner(cfg config.Config) *Runner {
	return &Runner{
		choice:  cfg.FilecountScript,
		scripts: scriptFS,
		clone:   gitClone,
		timeout: execTimeout,
	}
}

// SetProgressCallback registers fn to be called as each pipeline phase
// starts. Pass nil to disable. Must not be called while Run is in flight.
func (r *Runner) SetProgressCallback(fn ProgressFunc) {
	r.progress = fn
}

func (r *Runner) step(n int, phase string) {
	if r.progress != nil {
		r.progress(n, pipelineSteps, phase)
	}
}

// Run shallow-clones repoURL into a fresh temp workspace, stages the
// configured count script inside the clone, executes it there, and
// parses its output. The workspace is removed on every path out;
// cleanup failures are logged, never returned.
func (r *Runner) Run(ctx context.Context, repoURL string) (types.AnalysisReport, error) {
	workspace, err := os.MkdirTemp("", "mrkrabz-*")
	if err != nil {
		return types.AnalysisReport{}, &Error{Kind: KindWorkspace, Err: err}
	}
	defer func() {
		if err := os.RemoveAll(workspace); err != nil {
			log.Printf("analyze: could not remove workspace %s: %v", workspace, err)
		}
	}()

	r.step(1, "clone")
	cloneDir := filepath.Join(workspace, RepoNameFromURL(repoURL))
	cloneCtx, cancel := context.WithTimeout(ctx, cloneTimeout)
	defer cancel()
	if err := r.clone(cloneCtx, repoURL, cloneDir); err != nil {
		return types.AnalysisReport{}, &Error{Kind: KindClone, Err: err}
	}

	r.step(2, "stage")
	script := config.ScriptForChoice(r.choice)
	if err := r.stage(script, cloneDir); err != nil {
		return types.AnalysisReport{}, &Error{Kind: KindStaging, Err: err}
	}

	r.step(3, "count")
	output, err := r.execute(ctx, cloneDir, script)
	if err != nil {
		return types.AnalysisReport{}, &Error{Kind: KindExecution, Err: err}
	}

	r.step(4, "parse")
	return ParseReport(output), nil
}

// stage copies the bundled script into dir and marks it executable.
func (r *Runner) stage(name, dir string) error {
	data, err := fs.ReadFile(r.scripts, "scripts/"+name)
	if err != nil {
		return fmt.Errorf("script %s is not bundled: %w", name, err)
	}
	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, data, scriptPerm); err != nil {
		return err
	}
	// WriteFile mode is subject to umask; force the executable bits.
	return os.Chmod(dest, scriptPerm)
}

// execute runs the staged script with the clone as working directory
// and returns its stdout. PowerShell scripts only run on Windows.
func (r *Runner) execute(ctx context.Context, dir, script string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var cmd *exec.Cmd
	if strings.HasSuffix(script, ".ps1") {
		if runtime.GOOS != "windows" {
			return "", fmt.Errorf("%s needs PowerShell; pick a shell script in %s", script, config.ConfigFile)
		}
		cmd = exec.CommandContext(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-File", script)
	} else {
		cmd = exec.CommandContext(ctx, "./"+script)
	}
	cmd.Dir = dir
	// Orphaned children (find, wc) inherit the output pipes; without a
	// wait delay a timed-out script would block Run until they exit.
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s timed out after %s", script, r.timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return stdout.String(), nil
}
