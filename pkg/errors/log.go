package errors

import (
	"io"
	"log"
	"os"
)

// LogHandler writes errors and panics through a standard logger.
type LogHandler struct {
	// Verbose adds the error kind, the widget and any stack trace.
	Verbose bool
	// Output receives the log lines. Nil means stderr.
	Output io.Writer
}

func (h *LogHandler) logger() *log.Logger {
	w := h.Output
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, "dockui: ", 0)
}

// HandleError logs err on one line.
func (h *LogHandler) HandleError(err *UIError) {
	if err == nil {
		return
	}
	l := h.logger()
	if !h.Verbose {
		l.Printf("%s: %v", err.Op, err.Err)
		return
	}
	l.Print(err.Error())
	if err.StackTrace != "" {
		l.Printf("stack:\n%s", err.StackTrace)
	}
}

// HandlePanic logs a recovered panic.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	l.Print(err.Error())
	if h.Verbose && err.StackTrace != "" {
		l.Printf("stack:\n%s", err.StackTrace)
	}
}
