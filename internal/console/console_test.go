package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLineTrimsAndPrompts(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  12 \r\nlast"), &out)

	got, err := c.ReadLine()
	if err != nil || got != "12" {
		t.Fatalf("ReadLine() = %q, %v; want \"12\", nil", got, err)
	}
	got, err = c.Prompt("Press enter...")
	if err != nil || got != "last" {
		t.Fatalf("Prompt() = %q, %v; want \"last\", nil", got, err)
	}
	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if want := "> Press enter...> "; out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestPrintHelpers(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	c.Println("Guess", 1)
	c.Printf("%d-%s\n", 2, "x")
	if want := "Guess 1\n2-x\n"; out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}
