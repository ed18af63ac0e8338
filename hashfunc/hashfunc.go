package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash table. If a custom hash algorithm is supplied that already has a
	// table size, it will be overwritten by the capacity given to the hash table.
	//   - tableSize is the number of buckets the hash table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The hash table has a fixed number of buckets, so an implementation that rounds the table size up
	// (to a power of 2 or a prime) will be refused when the hash table is created.
	GetTableSize() int64
}
