// Package display prints client output with optional terminal colours.
// Colour is only used when the output is a terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

// Style selects a colour for a piece of output.
type Style int

const (
	Plain Style = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Bold
)

type Display struct {
	out io.Writer
	au  aurora.Aurora
}

// New writes to out. color is honoured only when out is a terminal.
func New(out io.Writer, color bool) *Display {
	return &Display{out: out, au: aurora.NewAurora(color && isTerminal(out))}
}

// Stdout is a Display on os.Stdout.
func Stdout(color bool) *Display {
	return New(os.Stdout, color)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Writer returns the underlying output.
func (d *Display) Writer() io.Writer {
	return d.out
}

func (d *Display) paint(style Style, s string) string {
	switch style {
	case Red:
		return d.au.Red(s).String()
	case Green:
		return d.au.Green(s).String()
	case Yellow:
		return d.au.Yellow(s).String()
	case Blue:
		return d.au.Blue(s).String()
	case Magenta:
		return d.au.Magenta(s).String()
	case Cyan:
		return d.au.Cyan(s).String()
	case Bold:
		return d.au.Bold(s).String()
	default:
		return s
	}
}

func (d *Display) Println(style Style, a ...any) {
	fmt.Fprintln(d.out, d.paint(style, fmt.Sprint(a...)))
}

func (d *Display) Printf(style Style, format string, a ...any) {
	fmt.Fprint(d.out, d.paint(style, fmt.Sprintf(format, a...)))
}

// Error prints a red error line.
func (d *Display) Error(format string, a ...any) {
	d.Println(Red, fmt.Sprintf(format, a...))
}

// Prompt returns a coloured prompt string
func (d *Display) Prompt(text string) string {
	return d.paint(Yellow, text+" > ")
}

// Turn renders a seat name in its piece colour.
func (d *Display) Turn(seat string) string {
	switch seat {
	case "X":
		return d.paint(Red, "X")
	case "O":
		return d.paint(Blue, "O")
	default:
		return seat
	}
}

// JSON pretty-prints v.
func (d *Display) JSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		d.Error("Error formatting JSON: %v", err)
		return
	}
	fmt.Fprintln(d.out, string(data))
}
