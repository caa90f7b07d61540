// Package display owns the terminal surface of a search run: a status
// line pinned to the bottom row on interactive terminals, a plain
// carriage-return-overwritten line everywhere else, and the formatting
// helpers for the numbers and durations shown there.
package display

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"golang.org/x/term"
)

// state is the terminal geometry shared by the status writers. rows is
// only meaningful while isTTY is true.
var state struct {
	sync.Mutex
	rows  int
	isTTY bool
}

// Init probes stdout and, when it is a terminal, reserves the bottom
// row as a pinned status bar by shrinking the scroll region by one.
// Reset must run before exit to give the row back.
func Init() {
	tty := term.IsTerminal(int(os.Stdout.Fd()))

	state.Lock()
	defer state.Unlock()
	state.isTTY = tty
	if !tty {
		return
	}

	_, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		rows = 24
	}
	if rows < 3 {
		// Need one scrollable row plus the status row, and ANSI rows
		// are 1-indexed.
		rows = 3
	}
	state.rows = rows
	fmt.Printf("\x1b[1;%dr\x1b[%d;1H", rows-1, rows-1)
}

// Reset restores the full scroll region and parks the cursor on the
// last row. A no-op when stdout is not a terminal.
func Reset() {
	state.Lock()
	defer state.Unlock()
	if !state.isTTY {
		return
	}
	fmt.Printf("\x1b[r\x1b[%d;1H\n", state.rows)
}

// IsTTY reports whether Init found stdout to be a terminal.
func IsTTY() bool {
	state.Lock()
	defer state.Unlock()
	return state.isTTY
}

// OverrideTTY forces the TTY state and row count, returning a restore
// function. Test-only.
func OverrideTTY(tty bool, rows int) func() {
	state.Lock()
	origTTY, origRows := state.isTTY, state.rows
	state.isTTY, state.rows = tty, rows
	state.Unlock()
	return func() {
		state.Lock()
		state.isTTY, state.rows = origTTY, origRows
		state.Unlock()
	}
}

// UpdateStatusBar rewrites the status line in place. On a terminal it
// repaints the pinned bottom row in reverse video; otherwise it
// overwrites the current line with carriage return plus erase-to-EOL,
// so piped output sees one line, not thousands.
func UpdateStatusBar(status string) {
	state.Lock()
	defer state.Unlock()
	if !state.isTTY {
		fmt.Printf("\r%s\x1b[K", status)
		return
	}
	fmt.Printf("\x1b[s\x1b[%d;1H\x1b[2K\x1b[7m %s \x1b[0m\x1b[u", state.rows, status)
}

// PrintAboveStatus emits a full line into the scrolling region, above
// the pinned bar. Without a terminal it is a plain printed line.
func PrintAboveStatus(format string, args ...any) {
	state.Lock()
	defer state.Unlock()
	if !state.isTTY {
		fmt.Printf(format+"\n", args...)
		return
	}
	// Scroll the region up one row, then write onto the freed row just
	// above the status bar and put the cursor back.
	fmt.Printf("\x1b[s\x1b[%d;1H\x1b[1A\n\x1b[%d;1H\x1b[2K", state.rows, state.rows-1)
	fmt.Printf(format, args...)
	fmt.Print("\x1b[u")
}

// FormatCount renders n with comma thousands separators.
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	out := make([]byte, 0, len(s)+(len(s)-1)/3)
	out = append(out, s[:head]...)
	for i := head; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return sign + string(out)
}
