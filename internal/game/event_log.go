package game

import "fmt"

// Event is one recorded simulation occurrence.
type Event struct {
	Tick     int
	Actor    string  // "player", a ghost personality, or "--" for global events
	Category string  // item, power, ghost, life, wave, mode, trail
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[T=0042] player item    pickup          small (10)
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-7s %-7s %-15s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// EventLog collects structured simulation events. It is unbounded and
// machine-readable: tests and the headless report filter it rather than
// scraping output. The render layer never writes to it.
type EventLog struct {
	entries []Event
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add records a new event.
func (el *EventLog) Add(tick int, actor, category, key, value string, numVal float64) {
	el.entries = append(el.entries, Event{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded events.
func (el *EventLog) Entries() []Event {
	return el.entries
}

// Filter returns events matching the given category and/or key. Pass an
// empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns the number of events matching a category/key filter.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// Tail returns up to n of the most recent events.
func (el *EventLog) Tail(n int) []Event {
	if n >= len(el.entries) {
		return el.entries
	}
	return el.entries[len(el.entries)-n:]
}
