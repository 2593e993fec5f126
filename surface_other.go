//go:build !unix

package forms

import "errors"

// TerminalPixels is only available on unix terminals.
func TerminalPixels(fd int) (width, height int, err error) {
	return 0, 0, errors.New("terminal pixel size is not available on this platform")
}
