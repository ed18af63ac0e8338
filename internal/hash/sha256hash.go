package hash

import (
	"encoding/hex"
	"fmt"
	"github.com/gostonefire/chainhashtable/internal/conf"
	sha256 "github.com/minio/sha256-simd"
	"strconv"
)

// Digest - Returns the key digest, which is the first conf.DigestPrefixLength hexadecimal characters of the
// SHA-256 digest over key parsed as a base 16 integer. The value is in range 0 -> 2^32 - 1 and is the same
// for the same key every time.
func Digest(key []byte) uint32 {
	sum := sha256.Sum256(key)
	prefix := hex.EncodeToString(sum[:])[:conf.DigestPrefixLength]

	// A hex encoded prefix of 8 characters always fits in 32 bits
	d, _ := strconv.ParseUint(prefix, 16, 32)

	return uint32(d)
}

// BucketIndex - Returns Digest(key) modulo capacity
//   - key is the identifier to find a bucket for
//   - capacity is the number of buckets to distribute over, it has to be a positive number
func BucketIndex(key []byte, capacity int64) (bucketNo int64, err error) {
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	bucketNo = int64(Digest(key)) % capacity

	return
}

// Sha256HashAlgorithm - The internally used bucket selection algorithm. It applies bucket = Digest(key) % tableSize
// where tableSize is exactly the capacity of the hash table, no rounding to a power of 2 is done.
type Sha256HashAlgorithm struct {
	tableSize int64
}

// NewSha256HashAlgorithm - Returns a pointer to a new Sha256HashAlgorithm instance
func NewSha256HashAlgorithm(tableSize int64) *Sha256HashAlgorithm {
	ha := &Sha256HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the hash table will address
func (S *Sha256HashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
// If the table size is not set to a positive value it returns -1, which is outside any valid range.
// A HashTable always sets a positive table size, so this only happens for an instance used on its own.
func (S *Sha256HashAlgorithm) HashFunc1(key []byte) int64 {
	bucketNo, err := BucketIndex(key, S.tableSize)
	if err != nil {
		return -1
	}
	return bucketNo
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *Sha256HashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}
