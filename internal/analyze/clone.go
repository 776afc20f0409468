package analyze

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const cloneTimeout = 120 * time.Second

// RepoNameFromURL extracts the repository name from a clone URL, used
// to name the clone directory. "https://github.com/user/repo.git"
// yields "repo". Unparseable URLs fall back to "repo".
func RepoNameFromURL(repoURL string) string {
	trimmed := strings.TrimRight(repoURL, "/")
	name := trimmed[strings.LastIndex(trimmed, "/")+1:]
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		return "repo"
	}
	return name
}

// gitClone makes a shallow clone of repoURL at dir. Analysis only needs
// the working tree at HEAD, so history is skipped to keep clones fast.
func gitClone(ctx context.Context, repoURL, dir string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", repoURL, dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("timed out after %s", cloneTimeout)
		}
		if msg := strings.TrimSpace(string(output)); msg != "" {
			return fmt.Errorf("git clone: %s", lastLine(msg))
		}
		return fmt.Errorf("git clone: %w", err)
	}
	return nil
}

// CloneInto makes a full clone of repoURL under destRoot, named after
// the repository. Unlike analysis clones the result is kept, so an
// existing directory is an error rather than something to overwrite.
func CloneInto(ctx context.Context, repoURL, destRoot string) (string, error) {
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", destRoot, err)
	}
	dest := filepath.Join(destRoot, RepoNameFromURL(repoURL))
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("%s already exists", dest)
	}

	ctx, cancel := context.WithTimeout(ctx, cloneTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "clone", repoURL, dest)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("clone timed out after %s", cloneTimeout)
		}
		if msg := strings.TrimSpace(string(output)); msg != "" {
			return "", fmt.Errorf("git clone: %s", lastLine(msg))
		}
		return "", fmt.Errorf("git clone: %w", err)
	}
	return dest, nil
}

// lastLine picks the final non-empty line of git output, which is where
// git puts the actual reason for a failure.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return s
}
