package dedupe

import "runtime/debug"

// Backend stores unique elements and replays them in a deterministic order
type Backend interface {
	// Upsert add/update key to backend/database
	Upsert(elem string)
	// IterCallback executes the callback on each element while
	// iterating, stops early when the callback returns false
	IterCallback(callback func(elem string) bool)
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// MapBackend keeps elements in memory preserving insertion order, so
// replay equals first-seen order
type MapBackend struct {
	seen  map[string]struct{}
	order []string
}

func NewMapBackend() *MapBackend {
	return &MapBackend{seen: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(elem string) {
	if _, ok := m.seen[elem]; ok {
		return
	}
	m.seen[elem] = struct{}{}
	m.order = append(m.order, elem)
}

func (m *MapBackend) IterCallback(callback func(elem string) bool) {
	for _, elem := range m.order {
		if !callback(elem) {
			return
		}
	}
}

func (m *MapBackend) Cleanup() {
	m.seen = nil
	m.order = nil
	// By default GC doesnot release buffered/allocated memory
	// since there always is possibilitly of needing it again/immediately
	// and releases memory in chunks
	// debug.FreeOSMemory forces GC to release allocated memory at once
	debug.FreeOSMemory()
}
