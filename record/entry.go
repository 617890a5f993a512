package record

import "sort"

// Entry represents one generated record in flat key-value store.
type Entry map[string]interface{}

// Extender is type used to extend records with additional data.
type Extender interface {
	// Extend returns a new entry, based on the passed one, with additional
	// data. Original entry is not modified but duplicate keys are overwritten in
	// returned entry.
	Extend(Entry) Entry
}

// StaticDataExtender adds data specified in the Data field to passed entry.
type StaticDataExtender struct {
	Data map[string]interface{}
}

// Extend returns a new entry with Data added to it.
func (e StaticDataExtender) Extend(entry Entry) Entry {
	extended := Entry{}
	for key, value := range entry {
		extended[key] = value
	}
	for key, value := range e.Data {
		extended[key] = value
	}
	return extended
}

// Extend applies extenders to entry in order.
func Extend(entry Entry, extenders ...Extender) Entry {
	for _, extender := range extenders {
		entry = extender.Extend(entry)
	}
	return entry
}

func (e Entry) keys() []string {
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
