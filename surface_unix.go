//go:build unix

package forms

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// TerminalPixels returns the pixel size of the terminal on fd as reported
// by the terminal emulator. Many emulators report zero.
func TerminalPixels(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("reading window size: %w", err)
	}
	if ws.Xpixel == 0 || ws.Ypixel == 0 {
		return 0, 0, fmt.Errorf("terminal does not report its pixel size")
	}
	return int(ws.Xpixel), int(ws.Ypixel), nil
}
