package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs to stderr (or Out, when set).
type LogHandler struct {
	// Verbose enables stack traces and merge skip events.
	Verbose bool
	// Out overrides the destination writer.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a DeclareError.
func (h *LogHandler) HandleError(err *DeclareError) {
	if err == nil {
		return
	}
	w := h.out()
	if !h.Verbose {
		fmt.Fprintf(w, "[declare error] %s: %v\n", err.Op, err.Err)
		return
	}
	fmt.Fprintf(w, "[declare error] %s [%s]", err.Op, err.Kind)
	if err.Type != "" {
		fmt.Fprintf(w, " type=%s", err.Type)
	}
	fmt.Fprintf(w, ": %v\n", err.Err)
	if err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "[declare panic] %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleSkip logs a merge skip event. Skips are only written in verbose mode.
func (h *LogHandler) HandleSkip(ev *SkipEvent) {
	if ev == nil || !h.Verbose {
		return
	}
	fmt.Fprintf(h.out(), "[declare merge] %s\n", ev.String())
}
