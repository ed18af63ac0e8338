package chain

import (
	"github.com/gostonefire/chainhashtable/crt"
	"github.com/gostonefire/chainhashtable/internal/model"
)

// Entries - Is used to iterate over the entries of a bucket chain one by one.
type Entries struct {
	next *model.Entry
}

// NewEntries - Returns a pointer to a new Entries struct starting at head
func NewEntries(head *model.Entry) *Entries {
	return &Entries{next: head}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (C *Entries) HasNext() bool {
	return C.next != nil
}

// Next - Returns entry.
// It returns:
//   - entry is the next entry in the chain.
//   - err is an error of type crt.NoRecordFound if there are no more entries when calling this function.
func (C *Entries) Next() (entry *model.Entry, err error) {
	if C.next == nil {
		err = crt.NoRecordFound{}
		return
	}

	entry = C.next
	C.next = entry.Next

	return
}

// Find - Returns the first entry from head whose key equals key.
// If no such entry exists an error of type crt.NoRecordFound is returned.
func Find(head *model.Entry, key string) (entry *model.Entry, err error) {
	iter := NewEntries(head)
	for iter.HasNext() {
		entry, _ = iter.Next()
		if entry.Key == key {
			return
		}
	}

	entry = nil
	err = crt.NoRecordFound{}

	return
}

// Prepend - Makes entry the new head of the chain, with the old head as its successor, and returns it
func Prepend(head *model.Entry, entry *model.Entry) *model.Entry {
	entry.Next = head
	return entry
}

// Len - Returns number of entries in the chain starting at head
func Len(head *model.Entry) (n int64) {
	iter := NewEntries(head)
	for iter.HasNext() {
		_, _ = iter.Next()
		n++
	}

	return
}
