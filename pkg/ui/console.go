package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Console prints the per-ID notices and the end-of-run summary
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a Console writing to out (stdout when nil)
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

// Downloaded reports a kept image
func (c *Console) Downloaded(id int) {
	c.println(fmt.Sprintf("%s %d.png", Green("Downloaded"), id))
}

// Skipped reports a discarded ID and why
func (c *Console) Skipped(id int, reason string) {
	c.println(fmt.Sprintf("%s %d: %s", Yellow("Skipping"), id, Dim(reason)))
}

// Summary prints the final totals
func (c *Console) Summary(downloaded, skipped int) {
	c.println(fmt.Sprintf("\nTotal: %d done, %d skip", downloaded, skipped))
}

// Archived reports the written archive
func (c *Console) Archived(path string, files int) {
	c.println(fmt.Sprintf("%s %s (%d files)", Cyan("Archived"), path, files))
}
