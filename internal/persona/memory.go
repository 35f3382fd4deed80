package persona

import "strings"

// memoryLimit bounds each persona's context memory; the oldest entry is
// evicted once the bound is exceeded.
const memoryLimit = 10

// summaryWindow is how many recent entries the summary joins.
const summaryWindow = 3

// ContextMemory is a bounded FIFO of recent context strings attached to a
// persona. The zero value is ready to use.
type ContextMemory struct {
	entries []string
}

// Add appends an entry, evicting the oldest past the bound.
func (m *ContextMemory) Add(ctx string) {
	m.entries = append(m.entries, ctx)
	if len(m.entries) > memoryLimit {
		m.entries = m.entries[len(m.entries)-memoryLimit:]
	}
}

// Entries returns the stored entries, oldest first.
func (m *ContextMemory) Entries() []string {
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of stored entries.
func (m *ContextMemory) Len() int {
	return len(m.entries)
}

// Summary joins the most recent entries into a one-line summary, or returns
// "" when the memory is empty.
func (m *ContextMemory) Summary() string {
	if len(m.entries) == 0 {
		return ""
	}
	recent := m.entries
	if len(recent) > summaryWindow {
		recent = recent[len(recent)-summaryWindow:]
	}
	return "Recent context: " + strings.Join(recent, "; ")
}
