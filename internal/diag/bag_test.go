package diag

import (
	"testing"

	"conffmt/internal/source"
)

func span(file source.FileID, start uint32) source.Span {
	return source.Span{File: file, Start: start, End: start + 1}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(ScanMismatchedBrackets, span(0, 0), "one")) {
		t.Error("first Add rejected")
	}
	if !bag.Add(NewError(ScanMismatchedBrackets, span(0, 1), "two")) {
		t.Error("second Add rejected")
	}
	if bag.Add(NewError(ScanMismatchedBrackets, span(0, 2), "three")) {
		t.Error("Add over the limit accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("empty bag reports findings")
	}

	bag.Add(NewWarning(ValDuplicateSection, span(0, 0), "dup"))
	if bag.HasErrors() {
		t.Error("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Error("warning not detected")
	}

	bag.Add(NewError(IOReadFailed, span(0, 1), "boom"))
	if !bag.HasErrors() {
		t.Error("error not detected")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewWarning(ValDuplicateSection, span(1, 0), "other file"))
	bag.Add(NewWarning(ValDuplicateSection, span(0, 9), "later"))
	bag.Add(NewError(ScanMismatchedBrackets, span(0, 3), "earlier"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "earlier" || items[1].Message != "later" || items[2].Message != "other file" {
		t.Errorf("sort order wrong: %q, %q, %q",
			items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagSortSeverityBreaksTies(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewWarning(ValDuplicateSection, span(0, 0), "warn"))
	bag.Add(NewError(ScanMismatchedBrackets, span(0, 0), "err"))
	bag.Sort()

	if bag.Items()[0].Message != "err" {
		t.Errorf("errors should sort before warnings at the same span, got %q first",
			bag.Items()[0].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewWarning(ValDuplicateSection, span(0, 0), "dup"))
	bag.Add(NewWarning(ValDuplicateSection, span(0, 0), "dup again"))
	bag.Add(NewWarning(ValDuplicateSection, span(0, 5), "elsewhere"))
	bag.Dedup()

	if bag.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(ValDuplicateSection, span(0, 0), "a"))

	b := NewBag(2)
	b.Add(NewWarning(ValDuplicateSection, span(0, 1), "b1"))
	b.Add(NewWarning(ValDuplicateSection, span(0, 2), "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len after Merge = %d, want 3", a.Len())
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevInfo, "INFO"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if !(SevError > SevWarning && SevWarning > SevInfo) {
		t.Error("severity ordering broken")
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{ScanMismatchedBrackets, "SCN1001"},
		{ValDuplicateSection, "VAL2001"},
		{IOReadFailed, "IO4001"},
		{IOWriteFailed, "IO4002"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID() = %q, want %q", got, tt.want)
		}
	}
}
