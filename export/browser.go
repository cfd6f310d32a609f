package export

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var ErrBrowserNotFound = errors.New("chrome or chromium was not found")

const (
	chromePathEnv      = "CHROME_PATH"
	installInstruction = "install Google Chrome or Chromium, then either put it on PATH, set CHROME_PATH or set browser in the config file"
)

var browserNames = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
	"msedge",
}

var browserPaths = []string{
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
}

var (
	lookPath = exec.LookPath
	stat     = os.Stat
)

// FindBrowser returns the Chrome executable to export with. An explicit
// path wins over CHROME_PATH, which wins over a search of PATH and the usual
// install locations.
func FindBrowser(configured string) (string, error) {
	for _, p := range []string{configured, os.Getenv(chromePathEnv)} {
		if p == "" {
			continue
		}
		if _, err := stat(p); err != nil {
			return "", fmt.Errorf("%w at %s: %s", ErrBrowserNotFound, p, installInstruction)
		}
		return p, nil
	}
	for _, name := range browserNames {
		if p, err := lookPath(name); err == nil {
			return p, nil
		}
	}
	for _, p := range browserPaths {
		if _, err := stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrBrowserNotFound, installInstruction)
}
