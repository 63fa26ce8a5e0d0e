// Package ui - Terminal output
// ANSI writer with headers, badges, tables, and a loading spinner.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"margin-optimizer/core/format"
)

// Colors for terminal output
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// toneColor maps a display tone token to an ANSI color
func toneColor(tone format.Tone) string {
	switch tone {
	case format.ToneSuccess:
		return Green
	case format.ToneWarning:
		return Yellow
	case format.ToneDanger:
		return Red
	case format.ToneInfo:
		return Cyan
	default:
		return White
	}
}

// Tone renders text in the color of a display tone
func (w *Writer) Tone(tone format.Tone, text string) string {
	return w.color(toneColor(tone), text)
}

// Print writes formatted output
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a document header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a section header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Green, "✓ ")+msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Yellow, "⚠ ")+msg)
}

// Error prints an error banner
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Red, "✗ ")+msg)
}

// Info prints an informational notice
func (w *Writer) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Blue, "ℹ ")+msg)
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	tones   []format.Tone
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row with a display tone
func (t *Table) AddRow(tone format.Tone, cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
	t.tones = append(t.tones, tone)
}

// Render prints the table
func (t *Table) Render() {
	rowFormat := ""
	for i, w := range t.widths {
		if i > 0 {
			rowFormat += " │ "
		}
		rowFormat += fmt.Sprintf("%%-%ds", w)
	}
	rowFormat += "\n"

	headerArgs := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		headerArgs[i] = h
	}
	t.w.Print("%s", t.w.color(Bold, fmt.Sprintf(rowFormat, headerArgs...)))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println("%s", sep)

	for i, row := range t.rows {
		args := make([]interface{}, len(row))
		for j, cell := range row {
			args[j] = cell
		}
		line := fmt.Sprintf(rowFormat, args...)
		if t.tones[i] != format.ToneNeutral {
			line = t.w.color(toneColor(t.tones[i]), line)
		}
		t.w.Print("%s", line)
	}
}

// Spinner shows a loading indicator while a request is in flight.
type Spinner struct {
	w       *Writer
	label   string
	frames  []string
	current int
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner
func (w *Writer) NewSpinner(label string) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start starts the spinner
func (s *Spinner) Start() {
	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				close(s.done)
				return
			case <-ticker.C:
				s.current = (s.current + 1) % len(s.frames)
				fmt.Fprintf(s.w.out, "\r%s %s", s.w.color(Cyan, s.frames[s.current]), s.label)
			}
		}
	}()
}

// Stop stops the spinner and clears its line
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.done
	fmt.Fprintf(s.w.out, "\r%s\r", strings.Repeat(" ", len(s.label)+2))
}
