package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

func writeClipboardText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard available")
	}
	// Trailing blank cells are noise once pasted.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return clipboard.WriteAll(strings.Join(lines, "\n"))
}
