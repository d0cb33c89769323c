// Package browser launches the user's default web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open asks the desktop to open url in the default browser. The launcher
// process is started and not waited on.
func Open(url string) error {
	cmd, err := launcher(url)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func launcher(url string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return nil, fmt.Errorf("no browser launcher for %s", runtime.GOOS)
	}
}
