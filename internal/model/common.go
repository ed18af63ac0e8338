package model

// Entry - Represents one key/value pair in a bucket chain
//   - Key is the identifier of the entry
//   - Value is whatever the caller stored with the key
//   - Next is the following entry in the same bucket, nil at the end of the chain
type Entry struct {
	Key   string
	Value any
	Next  *Entry
}

// HashTableParameters - Represents parameters the hash table was created with
type HashTableParameters struct {
	Capacity          int64
	InternalAlgorithm bool
}
