package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleNotices(t *testing.T) {
	SetNoColor(true)

	var buf bytes.Buffer
	console := NewConsole(&buf)

	console.Downloaded(3)
	console.Skipped(4, "not_found error (code 404): Not Found")
	console.Summary(1, 1)
	console.Archived("downloaded_images.zip", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Downloaded 3.png",
		"Skipping 4: not_found error (code 404): Not Found",
		"",
		"Total: 1 done, 1 skip",
		"Archived downloaded_images.zip (1 files)",
	}, lines)
}

func TestPrintError(t *testing.T) {
	SetNoColor(true)

	var buf bytes.Buffer
	orig := errOut
	errOut = &buf
	defer func() { errOut = orig }()

	PrintError("Archive failed", "disk full")
	PrintError("plain")

	assert.Equal(t, "Archive failed: disk full\nplain\n", buf.String())
}
