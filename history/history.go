package history

import "go-fx-widget/domain"

// MaxEntries the number of records a Log keeps
const MaxEntries = 10

// Log a bounded history of conversions, newest first. The zero value is an empty Log.
//
// Log is a value: Record and Clear return a new Log and never change the receiver,
// so records already stored are never modified.
type Log struct {
	entries []domain.Record
}

// Record returns a Log with entry prepended, keeping at most MaxEntries records.
// The oldest records beyond the cap are dropped.
func (l Log) Record(entry domain.Record) Log {
	n := len(l.entries) + 1
	if n > MaxEntries {
		n = MaxEntries
	}
	entries := make([]domain.Record, 0, n)
	entries = append(entries, entry)
	entries = append(entries, l.entries[:n-1]...)
	return Log{entries: entries}
}

// Clear returns an empty Log
func (l Log) Clear() Log {
	return Log{}
}

// Items returns a copy of the records, newest first
func (l Log) Items() []domain.Record {
	items := make([]domain.Record, len(l.entries))
	copy(items, l.entries)
	return items
}

// Len returns the number of records
func (l Log) Len() int {
	return len(l.entries)
}
