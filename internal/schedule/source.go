package schedule

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/daygrid/daygrid/internal/model"
)

// Event is one calendar entry attached to a day.
type Event struct {
	Date  string `yaml:"date"` // YYYY-MM-DD
	Title string `yaml:"title"`
	Color string `yaml:"color,omitempty"`
}

type document struct {
	Events []Event `yaml:"events"`
}

// Source holds events indexed by day for constant-time lookup from the
// cell-content callback, which runs once per visible cell on every refresh.
type Source struct {
	byDay map[model.IndexKey][]Event
}

// NewSource returns an empty source.
func NewSource() *Source {
	return &Source{byDay: make(map[model.IndexKey][]Event)}
}

// Load parses a YAML document of the form:
//
//	events:
//	  - date: 2025-06-18
//	    title: Dentist
//	    color: red
//
// Events with unparseable dates are skipped with a log line rather than
// failing the whole document.
func Load(data []byte) (*Source, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}

	s := NewSource()
	for _, event := range doc.Events {
		t, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			log.Printf("Skipping schedule event with bad date %q: %v", event.Date, err)
			continue
		}
		key := model.KeyOf(t)
		s.byDay[key] = append(s.byDay[key], event)
	}
	return s, nil
}

// LoadFile reads and parses a YAML schedule file.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule %s: %w", path, err)
	}
	return Load(data)
}

// Lookup returns the events attached to the given day, in document order.
func (s *Source) Lookup(key model.IndexKey) []Event {
	return s.byDay[key]
}

// Has reports whether any event is attached to the given day.
func (s *Source) Has(key model.IndexKey) bool {
	return len(s.byDay[key]) > 0
}

// Len returns the number of days carrying at least one event.
func (s *Source) Len() int {
	return len(s.byDay)
}
