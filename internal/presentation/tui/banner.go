package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
)

// TimestampLayout formats the session start time in the banner.
const TimestampLayout = "2006-01-02T15:04:05"

// PrintBanner writes the session header "FSM DESIGNER <version> <timestamp>".
// Colors follow the terminal profile of w and vanish when w is not a terminal.
func PrintBanner(w io.Writer, version string, now time.Time) {
	out := termenv.NewOutput(w)
	title := out.String("FSM DESIGNER").Bold().Foreground(out.Color("#a78bfa"))
	meta := out.String(version + " " + now.Format(TimestampLayout)).Faint()
	fmt.Fprintf(w, "%s %s\n", title, meta)
}
