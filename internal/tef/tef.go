// Package tef holds decode-side types for the Chrome Trace Event Format,
// the JSON schema trace viewers consume.
package tef

import (
	"encoding/json"
	"fmt"
	"os"
)

// PhaseComplete marks a complete ("X") duration event, the only phase the
// profiler emits.
const PhaseComplete = "X"

// Event is one entry of a trace file's traceEvents array.
type Event struct {
	Name string  `json:"name"`
	Cat  string  `json:"cat"`
	Ph   string  `json:"ph"`
	Pid  int     `json:"pid"`
	Tid  uint64  `json:"tid"`
	Ts   float64 `json:"ts"`
	Dur  float64 `json:"dur"`
}

// Document is a full trace file.
type Document struct {
	OtherData   map[string]any `json:"otherData"`
	TraceEvents []Event        `json:"traceEvents"`
}

// ReadFile parses a trace file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	return Parse(data)
}

// Parse parses trace file contents.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse trace: %w", err)
	}
	return &doc, nil
}

// Events returns the document's duration events, skipping the leading
// sentinel object the profiler writes before the first real entry.
func (d *Document) Events() []Event {
	events := make([]Event, 0, len(d.TraceEvents))
	for _, ev := range d.TraceEvents {
		if ev.Ph == "" && ev.Name == "" {
			continue
		}
		events = append(events, ev)
	}
	return events
}

// ByStart orders events by start timestamp. Implements sort.Interface.
type ByStart []Event

func (t ByStart) Len() int           { return len(t) }
func (t ByStart) Swap(i, j int)      { t[i], t[j] = t[j], t[i] }
func (t ByStart) Less(i, j int) bool { return t[i].Ts < t[j].Ts }
