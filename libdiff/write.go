package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Write prints lines in unified style, each prefixed by its Op. With
// colored set, insertions are green and deletions red.
func Write(w io.Writer, lines []Line, colored bool) error {
	add := fmt.Sprint
	del := fmt.Sprint
	if colored {
		add = color.New(color.FgGreen).Sprint
		del = color.New(color.FgRed).Sprint
	}
	for _, ln := range lines {
		s := ln.Op.String() + " " + ln.Text
		switch ln.Op {
		case Insert:
			s = add(s)
		case Delete:
			s = del(s)
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
