// Package browser opens article links in the user's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// start launches a detached process; replaced in tests.
var start = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Validate rejects anything but absolute http(s) URLs.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("refusing to open URL without host: %q", rawURL)
	}
	return nil
}

func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	name, args := command(runtime.GOOS, rawURL)
	if err := start(name, args...); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}

func command(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		// rundll32 avoids cmd /c start and its shell interpretation
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}
