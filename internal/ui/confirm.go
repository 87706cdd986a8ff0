package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks question on out and reads a y/N answer from in.
// Anything other than "y" or "yes" (any case) declines, as does EOF.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprint(out, WarningTitleStyle.Render(WarningMarker+"  "+question)+" [y/N]: ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		_, _ = fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
