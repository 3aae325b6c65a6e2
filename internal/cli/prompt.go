package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes question to w and reads a yes/no answer from r.
// Only "y" and "yes" (any case) count as yes; EOF counts as no.
func Confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N] ", question)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(w)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
