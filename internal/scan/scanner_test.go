package scan

import (
	"errors"
	"testing"

	"conffmt/internal/diag"
	"conffmt/internal/line"
	"conffmt/internal/source"
)

func scanString(t *testing.T, content string) ([]line.Record, *diag.Bag, error) {
	t.Helper()
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual("test.conf", []byte(content))
	bag := diag.NewBag(16)
	records, err := File(fileSet.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})
	return records, bag, err
}

func mustScan(t *testing.T, content string) []line.Record {
	t.Helper()
	records, _, err := scanString(t, content)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return records
}

func TestScanClassification(t *testing.T) {
	records := mustScan(t, "# hello\n\n[server]\nhost=localhost\nsome text\n")

	want := []struct {
		kind  line.Kind
		depth int
		text  string
	}{
		{line.Comment, 0, "# hello"},
		{line.Blank, 0, ""},
		{line.Section, 0, "[server]"},
		{line.KeyValue, 1, "host = localhost"},
		{line.Other, 1, "some text"},
	}

	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		r := records[i]
		if r.Kind != w.kind || r.Depth != w.depth || r.Text != w.text {
			t.Errorf("record %d = %s, want %s depth=%d %q", i, r, w.kind, w.depth, w.text)
		}
	}
}

func TestScanSectionDepths(t *testing.T) {
	records := mustScan(t, "[a]\nk=1\n[[b]]\nk=2\n[[[c]]]\nk=3\n[d]\nk=4\n")

	wantDepths := []int{0, 1, 1, 2, 2, 3, 0, 1}
	if len(records) != len(wantDepths) {
		t.Fatalf("got %d records, want %d", len(records), len(wantDepths))
	}
	for i, want := range wantDepths {
		if records[i].Depth != want {
			t.Errorf("record %d (%s) depth = %d, want %d", i, records[i], records[i].Depth, want)
		}
	}
}

func TestScanSiblingAfterNested(t *testing.T) {
	// Entering [[y]] after [[x]] pops the deeper frame first.
	records := mustScan(t, "[a]\n[[x]]\nk=1\n[[y]]\nk=2\n")

	wantDepths := []int{0, 1, 2, 1, 2}
	for i, want := range wantDepths {
		if records[i].Depth != want {
			t.Errorf("record %d (%s) depth = %d, want %d", i, records[i], records[i].Depth, want)
		}
	}
}

func TestScanCommentDepthFollowsStack(t *testing.T) {
	records := mustScan(t, "# top\n[a]\n# inside\n[[b]]\n# deeper\n")

	wantDepths := []int{0, 0, 1, 1, 2}
	for i, want := range wantDepths {
		if records[i].Depth != want {
			t.Errorf("record %d (%s) depth = %d, want %d", i, records[i], records[i].Depth, want)
		}
	}
}

func TestScanKeyValueNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "padded", input: "  host   =   localhost  \n", want: "host = localhost"},
		{name: "no spaces", input: "a=b\n", want: "a = b"},
		{name: "splits at first equals", input: "a=b=c\n", want: "a = b=c"},
		{name: "empty value keeps separator", input: "key=\n", want: "key = "},
		{name: "empty key", input: "=value\n", want: " = value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := mustScan(t, tt.input)
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if records[0].Kind != line.KeyValue {
				t.Fatalf("kind = %s, want KeyValue", records[0].Kind)
			}
			if records[0].Text != tt.want {
				t.Errorf("text = %q, want %q", records[0].Text, tt.want)
			}
		})
	}
}

func TestScanMismatchedBrackets(t *testing.T) {
	records, bag, err := scanString(t, "[ok]\n[[broken]\n")
	if err == nil {
		t.Fatal("expected an error for mismatched brackets")
	}
	if records != nil {
		t.Errorf("got %d records, want none", len(records))
	}

	var mismatch *MismatchedBracketsError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T, want *MismatchedBracketsError", err)
	}
	if mismatch.Line != 2 {
		t.Errorf("Line = %d, want 2", mismatch.Line)
	}
	if mismatch.Raw != "[[broken]" {
		t.Errorf("Raw = %q, want %q", mismatch.Raw, "[[broken]")
	}

	if bag.Len() != 1 {
		t.Fatalf("bag has %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.ScanMismatchedBrackets || d.Severity != diag.SevError {
		t.Errorf("diagnostic = %s %s, want error %s",
			d.Severity, d.Code.ID(), diag.ScanMismatchedBrackets.ID())
	}
}

func TestScanBracketInsideName(t *testing.T) {
	// Balanced outer counts with a stray bracket in the name are accepted.
	records := mustScan(t, "[a]b]\n")
	if records[0].Kind != line.Section {
		t.Fatalf("kind = %s, want Section", records[0].Kind)
	}
	if got := records[0].SectionName(); got != "a]b" {
		t.Errorf("SectionName() = %q, want %q", got, "a]b")
	}
}

func TestScanEmptyFile(t *testing.T) {
	records := mustScan(t, "")
	if records != nil {
		t.Errorf("got %d records for empty file, want none", len(records))
	}
}

func TestScanTrailingNewline(t *testing.T) {
	withNewline := mustScan(t, "k=1\n")
	withoutNewline := mustScan(t, "k=1")
	if len(withNewline) != 1 || len(withoutNewline) != 1 {
		t.Fatalf("got %d and %d records, want 1 and 1", len(withNewline), len(withoutNewline))
	}
}

func TestScanSpans(t *testing.T) {
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual("test.conf", []byte("[a]\nk=1\n"))
	records, err := File(fileSet.Get(id), Options{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	start, _ := fileSet.Resolve(records[1].Span)
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("record 1 starts at %d:%d, want 2:1", start.Line, start.Col)
	}
}
