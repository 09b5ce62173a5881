// Package browser opens rendered artifacts in the user's default browser.
package browser

import "github.com/pkg/browser"

// Opener launches the system browser.
type Opener struct{}

// Open implements ports.Opener.
func (Opener) Open(path string) error {
	return browser.OpenFile(path)
}
