package ui

import (
	"fmt"
	"io"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

// OK prints a success line to w.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render(symCheck+" "+msg))
}

// Fail prints an error line to w.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render(symCross+" "+msg))
}
