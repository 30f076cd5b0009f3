package lexer

import (
	"testing"

	"mackerel/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.md", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Expected peek %q, got %q", want, got)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Expected bump %q, got %q", want, got)
		}
	}
	if !cursor.EOF() {
		t.Fatal("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("Expected zero bytes past EOF")
	}
}

func TestCursorMarkAndSpan(t *testing.T) {
	cursor := NewCursor(createFile("###x"))
	m := cursor.Mark()
	for cursor.Eat('#') {
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Fatalf("unexpected span %v", sp)
	}
	if got := cursor.TextFrom(m); got != "###" {
		t.Fatalf("unexpected text %q", got)
	}
	if cursor.Eat('#') {
		t.Fatal("Eat must not consume a different byte")
	}
}
