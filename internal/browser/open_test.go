package browser

import (
	"runtime"
	"testing"
)

func TestLauncherUsesPlatformCommand(t *testing.T) {
	wantBin := map[string]string{
		"darwin":  "open",
		"linux":   "xdg-open",
		"windows": "rundll32",
	}
	bin, ok := wantBin[runtime.GOOS]
	if !ok {
		t.Skipf("no launcher expected on %s", runtime.GOOS)
	}

	url := "https://hostelhut.in/faq"
	cmd, err := launcher(url)
	if err != nil {
		t.Fatalf("launcher: %v", err)
	}
	if got := cmd.Args[0]; got != bin {
		t.Errorf("launcher binary = %q, want %q", got, bin)
	}
	if got := cmd.Args[len(cmd.Args)-1]; got != url {
		t.Errorf("launcher last arg = %q, want %q", got, url)
	}
}
