package dispatch

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// Swapped out in tests so no system clipboard is needed.
var clipboardWriteAll = clipboard.WriteAll

// ClipboardOpener hands the link to a terminal user by copying it to the system clipboard.
type ClipboardOpener struct{}

func (ClipboardOpener) Open(_ context.Context, link string) error {
	if err := clipboardWriteAll(link); err != nil {
		return fmt.Errorf("copy link to clipboard: %w", err)
	}
	return nil
}
