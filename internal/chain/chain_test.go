//go:build unit

package chain

import (
	"errors"
	"github.com/gostonefire/chainhashtable/crt"
	"github.com/gostonefire/chainhashtable/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

// buildChain - Returns a chain with the given keys in head to tail order
func buildChain(keys ...string) (head *model.Entry) {
	for i := len(keys) - 1; i >= 0; i-- {
		head = Prepend(head, &model.Entry{Key: keys[i], Value: i})
	}
	return
}

func TestEntries(t *testing.T) {
	t.Run("iterates over chain in order", func(t *testing.T) {
		// Prepare
		head := buildChain("a", "b", "c")
		iter := NewEntries(head)

		// Execute
		var keys []string
		for iter.HasNext() {
			entry, err := iter.Next()
			assert.NoError(t, err, "gets entry")
			keys = append(keys, entry.Key)
		}

		// Check
		assert.Equal(t, []string{"a", "b", "c"}, keys, "entries in chain order")
	})

	t.Run("returns NoRecordFound when exhausted", func(t *testing.T) {
		// Prepare
		iter := NewEntries(nil)

		// Execute
		entry, err := iter.Next()

		// Check
		assert.False(t, iter.HasNext(), "empty chain has no next")
		assert.Nil(t, entry, "no entry")
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "error is NoRecordFound")
	})
}

func TestFind(t *testing.T) {
	t.Run("finds first matching entry", func(t *testing.T) {
		// Prepare
		head := buildChain("a", "b", "b")

		// Execute
		entry, err := Find(head, "b")

		// Check
		assert.NoError(t, err, "entry found")
		assert.Equal(t, 1, entry.Value, "first match from head is returned")
	})

	t.Run("no matching entry", func(t *testing.T) {
		// Prepare
		head := buildChain("a", "b")

		// Execute
		entry, err := Find(head, "c")

		// Check
		assert.Nil(t, entry, "no entry")
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "error is NoRecordFound")
	})
}

func TestPrependAndLen(t *testing.T) {
	t.Run("prepend makes new head and keeps order behind it", func(t *testing.T) {
		// Prepare
		head := buildChain("a", "b")

		// Execute
		head = Prepend(head, &model.Entry{Key: "c"})

		// Check
		assert.Equal(t, "c", head.Key, "new head")
		assert.Equal(t, "a", head.Next.Key, "old head second")
		assert.Equal(t, "b", head.Next.Next.Key, "tail preserved")
		assert.Equal(t, int64(3), Len(head), "chain length")
		assert.Equal(t, int64(0), Len(nil), "empty chain length")
	})
}
