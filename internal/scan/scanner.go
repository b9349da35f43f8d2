package scan

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"conffmt/internal/diag"
	"conffmt/internal/line"
	"conffmt/internal/source"
)

// Scanner classifies one file, line by line, carrying the section stack
// between lines. A Scanner is single-use.
type Scanner struct {
	file  *source.File
	opts  Options
	stack sectionStack
}

func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file: file,
		opts: opts,
	}
}

// File classifies the whole file in one call.
func File(f *source.File, opts Options) ([]line.Record, error) {
	return New(f, opts).Scan()
}

// Scan classifies every line of the file in order. On a mismatched section
// header it reports through the Reporter and returns a
// *MismatchedBracketsError with no records.
func (s *Scanner) Scan() ([]line.Record, error) {
	if len(s.file.Content) == 0 {
		return nil, nil
	}

	raw := string(s.file.Content)
	lines := strings.Split(raw, "\n")
	// A trailing newline does not open an extra empty line.
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(raw, "\n") {
		lines = lines[:len(lines)-1]
	}

	records := make([]line.Record, 0, len(lines))
	for i, text := range lines {
		lineNum, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return nil, fmt.Errorf("line number overflow: %w", err)
		}
		rec, err := s.scanLine(text, lineNum)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Scanner) scanLine(raw string, lineNum uint32) (line.Record, error) {
	span := s.file.LineSpan(lineNum)
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return line.Record{Kind: line.Blank, Span: span}, nil
	}

	if strings.HasPrefix(trimmed, "#") {
		return line.Record{
			Kind:  line.Comment,
			Depth: s.stack.open(),
			Text:  trimmed,
			Span:  span,
		}, nil
	}

	if _, left, right, ok := line.MatchSection(trimmed); ok {
		if left != right {
			err := &MismatchedBracketsError{
				Path: s.file.Path,
				Line: lineNum,
				Raw:  trimmed,
			}
			diag.ReportError(s.opts.Reporter, diag.ScanMismatchedBrackets, span,
				fmt.Sprintf("mismatched brackets in section: %s", trimmed))
			return line.Record{}, err
		}

		depth := left - 1
		s.stack.enter(depth)
		return line.Record{
			Kind:  line.Section,
			Depth: depth,
			Text:  trimmed,
			Span:  span,
		}, nil
	}

	if idx := strings.IndexByte(trimmed, '='); idx >= 0 {
		key := strings.TrimSpace(trimmed[:idx])
		value := strings.TrimSpace(trimmed[idx+1:])
		return line.Record{
			Kind:  line.KeyValue,
			Depth: s.stack.open(),
			Text:  key + " = " + value,
			Span:  span,
		}, nil
	}

	return line.Record{
		Kind:  line.Other,
		Depth: s.stack.open(),
		Text:  trimmed,
		Span:  span,
	}, nil
}
