package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputText_Args(t *testing.T) {
	got, err := readInputText([]string{"Hello,", "world"}, "", strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, world" {
		t.Errorf("expected joined args, got %q", got)
	}
}

func TestReadInputText_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("Good morning\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	got, err := readInputText(nil, path, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Good morning\n" {
		t.Errorf("expected file contents verbatim, got %q", got)
	}
}

func TestReadInputText_Stdin(t *testing.T) {
	got, err := readInputText(nil, "", strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from stdin" {
		t.Errorf("expected stdin contents, got %q", got)
	}
}

func TestReadInputText_ArgsAndFile(t *testing.T) {
	_, err := readInputText([]string{"Hello"}, "input.txt", nil)
	if err == nil {
		t.Error("expected error when both args and --input are given")
	}
}

func TestReadInputText_MissingFile(t *testing.T) {
	_, err := readInputText(nil, filepath.Join(t.TempDir(), "missing.txt"), nil)
	if err == nil {
		t.Error("expected error for missing input file")
	}
}
