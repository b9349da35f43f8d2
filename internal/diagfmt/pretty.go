package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"conffmt/internal/diag"
	"conffmt/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
)

// Pretty formats diagnostics for humans, one heading per diagnostic:
//
//	<path>:<line>:<col>: <SEVERITY> [<ID>]: <message>
//
// followed by the offending source line when opts.ShowContext is set and by
// notes when opts.ShowNotes is set. Callers are expected to Sort the bag
// first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, d, fs, opts)
	}
}

func writePretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := f.FormatPath(opts.PathMode.mode(), fs.BaseDir())

	sev := d.Severity.String()
	if opts.Color {
		switch d.Severity {
		case diag.SevError:
			sev = errorColor.Sprint(sev)
		case diag.SevWarning:
			sev = warningColor.Sprint(sev)
		default:
			sev = infoColor.Sprint(sev)
		}
	}

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	if opts.ShowContext {
		if text := f.GetLine(start.Line); text != "" {
			fmt.Fprintf(w, "  %s\n", strings.TrimRight(text, "\r\n"))
		}
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			nstart, _ := fs.Resolve(n.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				label, nf.FormatPath(opts.PathMode.mode(), fs.BaseDir()), nstart.Line, nstart.Col, n.Msg)
		}
	}
}
