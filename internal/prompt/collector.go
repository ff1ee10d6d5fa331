// Package prompt implements the interactive input flow: collecting material
// names line by line and confirming the batch before generation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Collector reads the interactive generation input from a single buffered
// reader so piped input survives the transition from name collection to
// confirmation.
type Collector struct {
	reader *bufio.Reader
	out    io.Writer
}

// New returns a Collector reading from r and prompting on w.
func New(r io.Reader, w io.Writer) *Collector {
	return &Collector{
		reader: bufio.NewReader(r),
		out:    w,
	}
}

// CollectNames reads material names, one per line, until a blank line or
// end of input. Lines are whitespace-trimmed; an empty first line yields an
// empty slice.
func (c *Collector) CollectNames() ([]string, error) {
	var names []string

	for {
		line, err := c.reader.ReadString('\n')
		name := strings.TrimSpace(line)
		if err != nil {
			if err == io.EOF {
				if name != "" {
					names = append(names, name)
				}
				return names, nil
			}
			return nil, fmt.Errorf("reading material name: %w", err)
		}
		if name == "" {
			return names, nil
		}
		names = append(names, name)
	}
}

// Confirm echoes the numbered name list and asks for confirmation. Only
// "y" or "yes" (case-insensitive) confirms.
func (c *Collector) Confirm(names []string) (bool, error) {
	fmt.Fprintf(c.out, "\nMaterial names to process:\n")
	for i, name := range names {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintf(c.out, "\nProceed with generation? (y/N): ")

	line, err := c.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// IsTerminal checks if the given file is a terminal (for auto-detecting
// interactive mode).
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
