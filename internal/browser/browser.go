// Package browser hands URLs to the operating system's default handler.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches the system browser for url without waiting for it.
// An error only means the handler process could not be started; once
// started, whatever it does is out of our hands.
func Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}
