package chainhashtable

import (
	"fmt"
	"github.com/gostonefire/chainhashtable/hashfunc"
	"github.com/gostonefire/chainhashtable/internal/conf"
	"github.com/gostonefire/chainhashtable/internal/hash"
	"github.com/gostonefire/chainhashtable/internal/model"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("chainhashtable")

// Keep the library quiet unless the application configures a logging backend of its own
func init() {
	logging.SetLevel(logging.WARNING, "chainhashtable")
}

// Entry - One key/value pair in a bucket chain, Next points to the following entry in the same bucket
type Entry = model.Entry

// HashTableInfo - Information structure containing some information about the hash table created
//   - Capacity is the fixed number of buckets in the hash table
//   - InternalAlgorithm is true if the internal SHA-256 based hash algorithm is used
type HashTableInfo struct {
	Capacity          int64
	InternalAlgorithm bool
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries reachable in all chains
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the longest chain
//   - BucketDistribution is the number of entries stored in each bucket
type HashTableStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct. It is not safe for concurrent use, see SyncHashTable.
type HashTable struct {
	buckets           []*model.Entry
	count             int64
	capacity          int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewHashTable - Returns a new hash table with a fixed number of buckets. The number of buckets never changes,
// there is no rehashing regardless of how many entries are inserted.
//   - capacity is the number of buckets, it has to be a positive value
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (hashTable *HashTable, err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSha256HashAlgorithm(capacity)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(capacity)
		if hashAlgorithm.GetTableSize() != capacity {
			err = fmt.Errorf("hash algorithm table size (%d) differs from capacity (%d)", hashAlgorithm.GetTableSize(), capacity)
			return
		}
	}

	hashTable = &HashTable{
		buckets:           make([]*model.Entry, capacity),
		capacity:          capacity,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// NewDefaultHashTable - Returns a new hash table with the default number of buckets and the internal hash algorithm
func NewDefaultHashTable() *HashTable {
	// The default capacity is a positive constant so this can't fail
	hashTable, _ := NewHashTable(conf.DefaultCapacity, nil)
	return hashTable
}

// Count - Returns number of entries stored
func (H *HashTable) Count() int64 {
	return H.count
}

// Capacity - Returns the fixed number of buckets
func (H *HashTable) Capacity() int64 {
	return H.capacity
}

// GetHashTableInfo - Returns a HashTableInfo struct describing the hash table
func (H *HashTable) GetHashTableInfo() HashTableInfo {
	p := H.parameters()
	return HashTableInfo{
		Capacity:          p.Capacity,
		InternalAlgorithm: p.InternalAlgorithm,
	}
}

// Bucket - Returns the head of the chain in the given bucket, or nil if the bucket is empty.
// The rest of the chain is reached by following Entry.Next.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (H *HashTable) Bucket(bucketNo int64) (head *Entry, err error) {
	if bucketNo < 0 || bucketNo >= H.capacity {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 -> %d", bucketNo, H.capacity-1)
		return
	}

	head = H.buckets[bucketNo]

	return
}

// parameters - Returns the parameters the hash table was created with
func (H *HashTable) parameters() model.HashTableParameters {
	return model.HashTableParameters{
		Capacity:          H.capacity,
		InternalAlgorithm: H.internalAlgorithm,
	}
}
