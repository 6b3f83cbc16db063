package questions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coding-ninjas-ai/backend/internal/questions"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "questions.json", `[
		{"question": "What does VLOOKUP do?", "answer": "Searches a column and returns a value from another column"},
		{"question": "What is a pivot table?", "answer": "A tool to summarize and reorganize data"}
	]`)

	list, err := questions.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if list.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", list.Len())
	}

	q, ok := list.At(0)
	if !ok {
		t.Fatal("expected question at index 0")
	}
	if q.Text != "What does VLOOKUP do?" {
		t.Errorf("unexpected question text %q", q.Text)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "questions.yaml", `
- question: What is conditional formatting?
  answer: Formatting cells based on rules
- question: What does INDEX/MATCH do?
  answer: A flexible lookup combination
`)

	list, err := questions.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if list.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", list.Len())
	}

	q, _ := list.At(1)
	if q.ExpectedAnswer != "A flexible lookup combination" {
		t.Errorf("unexpected expected answer %q", q.ExpectedAnswer)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "questions.json", `[]`)

	if _, err := questions.Load(path); err == nil {
		t.Error("expected error for empty question list")
	}
}

func TestLoad_EmptyQuestionText(t *testing.T) {
	path := writeFile(t, "questions.json", `[{"question": "  ", "answer": "x"}]`)

	if _, err := questions.Load(path); err == nil {
		t.Error("expected error for blank question text")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := questions.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAt_OutOfRange(t *testing.T) {
	list := questions.FromSlice(nil)

	if _, ok := list.At(0); ok {
		t.Error("expected no question at index 0 of empty list")
	}
	if _, ok := list.At(-1); ok {
		t.Error("expected no question at negative index")
	}
}
