package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newTestRoot(t *testing.T) *cobra.Command {
	t.Helper()
	root := &cobra.Command{Use: "conffmt"}
	root.PersistentFlags().String("color", "off", "")
	root.PersistentFlags().Bool("quiet", true, "")
	root.PersistentFlags().Int("max-diagnostics", 100, "")
	root.AddCommand(fmtCmd)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	t.Cleanup(func() {
		fmtCheck, fmtStdout, fmtNoCache, fmtUI = false, false, false, false
		fmtOutput = "text"
		fmtIndent, fmtJobs = 0, 0
		fmtExts = nil
		fmtOutPath = ""
	})
	return root
}

func TestFmtOutputFlagWritesAside(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.conf")
	original := "[a]\nk=1\n"
	if err := os.WriteFile(src, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out.conf")

	root := newTestRoot(t)
	root.SetArgs([]string{"fmt", "-o", dst, src})
	if err := root.Execute(); err != nil {
		t.Fatalf("fmt -o failed: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	want := "[a]\n    k = 1\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	kept, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(kept) != original {
		t.Errorf("source was modified: %q", kept)
	}
}

func TestFmtOutputFlagRejectsMultiplePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.conf", "b.conf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("k=1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	root := newTestRoot(t)
	root.SetArgs([]string{"fmt", "-o", filepath.Join(dir, "out.conf"),
		filepath.Join(dir, "a.conf"), filepath.Join(dir, "b.conf")})
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for --output with multiple inputs")
	}
}
