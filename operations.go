package chainhashtable

import (
	"errors"
	"fmt"
	"github.com/gostonefire/chainhashtable/crt"
	"github.com/gostonefire/chainhashtable/internal/chain"
	"github.com/gostonefire/chainhashtable/internal/model"
)

// InsertNoCollisions - Adds an entry to an empty bucket. Any occupied bucket is refused, whether it
// is occupied by a different key or by the very same key.
//   - key is the identifier of the entry
//   - value is stored along with the key
//
// It returns:
//   - err is either of type crt.Collision if the bucket was occupied, or a standard error if something went wrong
func (H *HashTable) InsertNoCollisions(key string, value any) (err error) {
	bucketNo, err := H.GetBucketNo(key)
	if err != nil {
		return
	}

	if H.buckets[bucketNo] != nil {
		log.Debugf("collision in bucket %d for key %q", bucketNo, key)
		err = crt.NewCollision(fmt.Sprintf("hash collision or same key/value pair already exists in bucket %d", bucketNo))
		return
	}

	H.buckets[bucketNo] = &model.Entry{Key: key, Value: value}
	H.count++

	return
}

// InsertWithHashCollisions - Adds an entry as the new head of the chain in its bucket. Existing entries with
// the same key are not looked for, so duplicate keys may be stored.
//   - key is the identifier of the entry
//   - value is stored along with the key
//
// It returns:
//   - err is a standard error if the hash algorithm gave an invalid bucket number
func (H *HashTable) InsertWithHashCollisions(key string, value any) (err error) {
	bucketNo, err := H.GetBucketNo(key)
	if err != nil {
		return
	}

	if H.buckets[bucketNo] != nil {
		log.Debugf("chaining key %q in bucket %d", key, bucketNo)
	}

	H.buckets[bucketNo] = chain.Prepend(H.buckets[bucketNo], &model.Entry{Key: key, Value: value})
	H.count++

	return
}

// Insert - Updates an existing entry with the same key or adds it as the new head of the chain in its bucket.
//   - key is the identifier of the entry
//   - value is stored along with the key, replacing any previous value for key
//
// It returns:
//   - err is a standard error if the hash algorithm gave an invalid bucket number
func (H *HashTable) Insert(key string, value any) (err error) {
	bucketNo, err := H.GetBucketNo(key)
	if err != nil {
		return
	}

	entry, err := chain.Find(H.buckets[bucketNo], key)
	if err == nil {
		log.Debugf("overwriting key %q in bucket %d", key, bucketNo)
		entry.Value = value
		return
	} else if !errors.Is(err, crt.NoRecordFound{}) {
		return
	}
	err = nil

	H.buckets[bucketNo] = chain.Prepend(H.buckets[bucketNo], &model.Entry{Key: key, Value: value})
	H.count++

	return
}

// InsertWithTechnique - Inserts using the given collision resolution technique.
// Mixing techniques on the same hash table is permitted, but only crt.ChainingWithOverwrite keeps keys unique.
//   - technique is one of crt.NoCollisions, crt.Chaining or crt.ChainingWithOverwrite
//   - key is the identifier of the entry
//   - value is stored along with the key
func (H *HashTable) InsertWithTechnique(technique int, key string, value any) (err error) {
	switch technique {
	case crt.NoCollisions:
		err = H.InsertNoCollisions(key, value)
	case crt.Chaining:
		err = H.InsertWithHashCollisions(key, value)
	case crt.ChainingWithOverwrite:
		err = H.Insert(key, value)
	default:
		err = fmt.Errorf("unknown collision resolution technique %d", technique)
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of an entry
func (H *HashTable) GetBucketNo(key string) (bucketNo int64, err error) {
	bucketNo = H.hashAlgorithm.HashFunc1([]byte(key))
	if bucketNo < 0 || bucketNo >= H.capacity {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable) Stat(includeDistribution bool) *HashTableStat {
	var hts HashTableStat

	if includeDistribution {
		hts.BucketDistribution = make([]int64, H.capacity)
	}

	// Iterate over every available bucket
	var n int64
	for i, head := range H.buckets {
		n = chain.Len(head)
		if n == 0 {
			continue
		}

		hts.Records += n
		hts.UsedBuckets++
		if n > hts.LongestChain {
			hts.LongestChain = n
		}
		if includeDistribution {
			hts.BucketDistribution[i] = n
		}
	}

	return &hts
}
