package validate

import (
	"strings"
	"testing"

	"conffmt/internal/diag"
	"conffmt/internal/line"
	"conffmt/internal/source"
)

func sec(depth int, text string, start uint32) line.Record {
	return line.Record{
		Kind:  line.Section,
		Depth: depth,
		Text:  text,
		Span:  source.Span{Start: start, End: start + 1},
	}
}

func kv(depth int, text string) line.Record {
	return line.Record{Kind: line.KeyValue, Depth: depth, Text: text}
}

func validateRecords(t *testing.T, recs []line.Record) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(16)
	Records(recs, diag.BagReporter{Bag: bag})
	return bag
}

func TestDuplicateTopLevelSection(t *testing.T) {
	bag := validateRecords(t, []line.Record{
		sec(0, "[db]", 0),
		kv(1, "x = 1"),
		sec(0, "[db]", 20),
	})

	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != diag.SevWarning || d.Code != diag.ValDuplicateSection {
		t.Errorf("diagnostic = %s %s, want warning %s",
			d.Severity, d.Code.ID(), diag.ValDuplicateSection.ID())
	}
	if !strings.Contains(d.Message, "db") {
		t.Errorf("message %q does not name the section", d.Message)
	}
	if d.Primary.Start != 20 {
		t.Errorf("primary span starts at %d, want the re-occurrence at 20", d.Primary.Start)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.Start != 0 {
		t.Errorf("note should point at the first occurrence, got %+v", d.Notes)
	}
}

func TestSameNameUnderDifferentParents(t *testing.T) {
	bag := validateRecords(t, []line.Record{
		sec(0, "[a]", 0),
		sec(1, "[[x]]", 10),
		sec(0, "[b]", 20),
		sec(1, "[[x]]", 30),
	})
	if bag.Len() != 0 {
		t.Fatalf("got %d diagnostics, want none: %v", bag.Len(), bag.Items())
	}
}

func TestDuplicateNestedSection(t *testing.T) {
	bag := validateRecords(t, []line.Record{
		sec(0, "[a]", 0),
		sec(1, "[[x]]", 10),
		sec(1, "[[x]]", 20),
	})

	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	if !strings.Contains(bag.Items()[0].Message, "a/x") {
		t.Errorf("message %q should carry the full path", bag.Items()[0].Message)
	}
}

func TestEveryRepeatIsReported(t *testing.T) {
	bag := validateRecords(t, []line.Record{
		sec(0, "[s]", 0),
		sec(0, "[s]", 10),
		sec(0, "[s]", 20),
	})
	if bag.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2", bag.Len())
	}
	for _, d := range bag.Items() {
		if len(d.Notes) != 1 || d.Notes[0].Span.Start != 0 {
			t.Errorf("every repeat should point at the first occurrence, got %+v", d.Notes)
		}
	}
}

func TestNilReporterIsTolerated(t *testing.T) {
	Records([]line.Record{sec(0, "[a]", 0), sec(0, "[a]", 10)}, nil)
}

func TestNonSectionRecordsIgnored(t *testing.T) {
	bag := validateRecords(t, []line.Record{
		kv(0, "a = 1"),
		{Kind: line.Comment, Text: "# [a]"},
		{Kind: line.Other, Text: "[not a section"},
	})
	if bag.Len() != 0 {
		t.Fatalf("got %d diagnostics, want none", bag.Len())
	}
}
