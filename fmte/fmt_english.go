package fmte

import (
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes English-formatted messages (digit grouping included) to an
// output and an error stream. Writes are serialised, so a Printer can be
// shared by goroutines.
type Printer struct {
	mx      sync.Mutex
	p       *message.Printer
	out     io.Writer
	err     io.Writer
	quiet   bool
	verbose bool
}

// NewPrinter creates a Printer writing to given streams
func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{
		p:   message.NewPrinter(language.English),
		out: out,
		err: err,
	}
}

var std = NewPrinter(os.Stdout, os.Stderr)

// Default returns the Printer behind the package-level functions
func Default() *Printer {
	return std
}

// SetOutput redirects normal and verbose output
func (pr *Printer) SetOutput(out io.Writer) {
	pr.mx.Lock()
	pr.out = out
	pr.mx.Unlock()
}

// Off suppresses everything but error output
func (pr *Printer) Off() {
	pr.mx.Lock()
	pr.quiet = true
	pr.mx.Unlock()
}

// VerboseOn enables output of PrintfV
func (pr *Printer) VerboseOn() {
	pr.mx.Lock()
	pr.verbose = true
	pr.mx.Unlock()
}

func (pr *Printer) Printf(format string, a ...any) {
	pr.mx.Lock()
	defer pr.mx.Unlock()
	if !pr.quiet {
		_, _ = pr.p.Fprintf(pr.out, format, a...)
	}
}

// PrintfV is Printf for verbose mode only
func (pr *Printer) PrintfV(format string, a ...any) {
	pr.mx.Lock()
	defer pr.mx.Unlock()
	if !pr.quiet && pr.verbose {
		_, _ = pr.p.Fprintf(pr.out, format, a...)
	}
}

// PrintfErr prints to the error stream; it is never suppressed
func (pr *Printer) PrintfErr(format string, a ...any) {
	pr.mx.Lock()
	defer pr.mx.Unlock()
	_, _ = pr.p.Fprintf(pr.err, format, a...)
}

// Off function turns off print functions within fmte package
func Off() {
	std.Off()
}

// VerboseOn turns on verbose print functions within fmte package
func VerboseOn() {
	std.VerboseOn()
}

// Printf is goroutine-safe fmt.Printf for English
func Printf(format string, a ...any) {
	std.Printf(format, a...)
}

// PrintfV is goroutine-safe fmt.Printf for English (Verbose mode)
func PrintfV(format string, a ...any) {
	std.PrintfV(format, a...)
}

// PrintfErr is goroutine-safe fmt.Printf to StdErr for English
func PrintfErr(format string, a ...any) {
	std.PrintfErr(format, a...)
}

// Errors combines multiple errors into one, skipping nils. It returns nil
// when there is nothing to report. The result unwraps to the given errors.
func Errors(message string, errs []error) error {
	kept := make([]error, 0, len(errs))
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
			msgs = append(msgs, err.Error())
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &combinedError{msg: message + ": " + strings.Join(msgs, ", "), errs: kept}
}

type combinedError struct {
	msg  string
	errs []error
}

func (e *combinedError) Error() string {
	return e.msg
}

func (e *combinedError) Unwrap() []error {
	return e.errs
}
