//go:build unit

package hash

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDigest(t *testing.T) {
	t.Run("parses the first 8 hex characters of the digest", func(t *testing.T) {
		// Prepare
		// sha256("key-1") = be297454..., sha256("key-2") = 7c36b0a9..., sha256("key-3") = d9ef8196...
		expected := map[string]uint32{
			"key-1": 0xbe297454,
			"key-2": 0x7c36b0a9,
			"key-3": 0xd9ef8196,
		}

		for key, digest := range expected {
			// Execute
			d := Digest([]byte(key))

			// Check
			assert.Equal(t, digest, d, "correct digest for %s", key)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		// Prepare
		key := []byte("some key")

		// Execute
		d1 := Digest(key)
		d2 := Digest(key)

		// Check
		assert.Equal(t, d1, d2, "same key gives same digest")
	})
}

func TestBucketIndex(t *testing.T) {
	t.Run("returns digest modulo capacity", func(t *testing.T) {
		// Execute
		b1, err1 := BucketIndex([]byte("key-1"), 2)
		b2, err2 := BucketIndex([]byte("key-2"), 2)
		b3, err3 := BucketIndex([]byte("key-3"), 2)

		// Check
		assert.NoError(t, err1, "valid capacity")
		assert.NoError(t, err2, "valid capacity")
		assert.NoError(t, err3, "valid capacity")
		assert.Equal(t, int64(0), b1, "key-1 in bucket 0")
		assert.Equal(t, int64(1), b2, "key-2 in bucket 1")
		assert.Equal(t, int64(0), b3, "key-3 in bucket 0")
	})

	t.Run("stays within range for many capacities", func(t *testing.T) {
		for c := int64(1); c <= 64; c++ {
			for i := 0; i < 100; i++ {
				// Prepare
				key := []byte(fmt.Sprintf("key-%d", i))

				// Execute
				bucketNo, err := BucketIndex(key, c)

				// Check
				assert.NoError(t, err, "valid capacity")
				assert.True(t, bucketNo >= 0 && bucketNo < c, "bucket number within range")
			}
		}
	})

	t.Run("fails on non positive capacity", func(t *testing.T) {
		// Execute
		_, errZero := BucketIndex([]byte("key-1"), 0)
		_, errNeg := BucketIndex([]byte("key-1"), -3)

		// Check
		assert.Error(t, errZero, "zero capacity refused")
		assert.Error(t, errNeg, "negative capacity refused")
	})
}

func TestSha256HashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size without rounding", func(t *testing.T) {
		// Prepare
		h := NewSha256HashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestSha256HashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewSha256HashAlgorithm(10)

		// Execute
		h.SetTableSize(23)

		// Check
		assert.Equal(t, int64(23), h.GetTableSize(), "correct tableSize value")
	})
}

func TestSha256HashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewSha256HashAlgorithm(4)

		// Execute
		bucketNo := h.HashFunc1([]byte("key-3"))

		// Check
		// 0xd9ef8196 = 3656352150, 3656352150 % 4 = 2
		assert.Equal(t, int64(2), bucketNo, "create a valid bucket number")
	})

	t.Run("returns out of range bucket for unset table size", func(t *testing.T) {
		// Prepare
		h := &Sha256HashAlgorithm{}

		// Execute
		bucketNo := h.HashFunc1([]byte("key-3"))

		// Check
		assert.Equal(t, int64(-1), bucketNo, "invalid bucket number")
	})
}
