package combat

import (
	"sort"
	"strings"

	"monster_world/internal/util"
)

// EventLog collects events in emission order. Order of emission carries no
// meaning; Sorted is the only ordering.
type EventLog struct {
	events []Event
}

func (l *EventLog) Add(ev Event) { l.events = append(l.events, ev) }

func (l *EventLog) Len() int { return len(l.events) }

// Before orders by time, category and city ascending, then text descending.
func Before(a, b Event) bool {
	if a.T != b.T {
		return a.T < b.T
	}
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	if a.City != b.City {
		return a.City < b.City
	}
	return a.Text > b.Text
}

// Sorted returns the events up to horizon in log order.
func (l *EventLog) Sorted(horizon int) []Event {
	out := make([]Event, 0, len(l.events))
	for _, ev := range l.events {
		if ev.T <= horizon {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return Before(out[i], out[j]) })
	return out
}

// Render stamps each event. Multi-line events keep their inner line breaks.
func Render(events []Event) []string {
	lines := make([]string, len(events))
	for i, ev := range events {
		lines[i] = util.Stamp(ev.T, ev.Text)
	}
	return lines
}

// Transcript joins rendered events into the printed block, one event per line.
func Transcript(events []Event) string {
	var b strings.Builder
	for _, line := range Render(events) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
