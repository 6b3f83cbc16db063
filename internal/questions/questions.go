// Package questions loads the fixed interview question sequence.
package questions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

// List is the ordered, read-only question sequence for the whole process.
type List struct {
	items []interview.Question
}

// Load reads questions from a JSON or YAML file (picked by extension).
// The file is read once at startup; the result never changes.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questions: read %s: %w", path, err)
	}

	var items []interview.Question
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &items)
	default:
		err = json.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("questions: parse %s: %w", path, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("questions: %s contains no questions", path)
	}
	for i, q := range items {
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("questions: entry %d has an empty question", i)
		}
	}

	return &List{items: items}, nil
}

// FromSlice wraps an in-memory question list. Used by tests and the simulation.
func FromSlice(items []interview.Question) *List {
	copied := make([]interview.Question, len(items))
	copy(copied, items)
	return &List{items: copied}
}

// Len returns the number of questions.
func (l *List) Len() int {
	return len(l.items)
}

// At returns the question at a 0-based position.
func (l *List) At(i int) (interview.Question, bool) {
	if i < 0 || i >= len(l.items) {
		return interview.Question{}, false
	}
	return l.items[i], true
}
