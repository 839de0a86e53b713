package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"termfolio/banner"
)

// CopyFrame puts the plain-text rendition of the current frame on the
// system clipboard. Clipboard tooling is absent on some systems; the
// error is for the status line, never fatal.
func CopyFrame(st *banner.Store) error {
	text := FrameText(st)
	if text == "" {
		return fmt.Errorf("nothing to copy")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
