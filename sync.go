package chainhashtable

import (
	"github.com/gostonefire/chainhashtable/hashfunc"
	"sync"
)

// SyncHashTable - Guards a HashTable with a mutex so the insert family can be called from several goroutines
type SyncHashTable struct {
	mu        sync.Mutex
	hashTable *HashTable
}

// NewSyncHashTable - Returns a new mutex guarded hash table, see NewHashTable for parameters
func NewSyncHashTable(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (syncHashTable *SyncHashTable, err error) {
	hashTable, err := NewHashTable(capacity, hashAlgorithm)
	if err != nil {
		return
	}

	syncHashTable = &SyncHashTable{hashTable: hashTable}

	return
}

// InsertNoCollisions - See HashTable.InsertNoCollisions
func (S *SyncHashTable) InsertNoCollisions(key string, value any) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.InsertNoCollisions(key, value)
}

// InsertWithHashCollisions - See HashTable.InsertWithHashCollisions
func (S *SyncHashTable) InsertWithHashCollisions(key string, value any) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.InsertWithHashCollisions(key, value)
}

// Insert - See HashTable.Insert
func (S *SyncHashTable) Insert(key string, value any) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.Insert(key, value)
}

// InsertWithTechnique - See HashTable.InsertWithTechnique
func (S *SyncHashTable) InsertWithTechnique(technique int, key string, value any) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.InsertWithTechnique(technique, key, value)
}

// Bucket - See HashTable.Bucket. The returned chain must not be walked while other goroutines insert.
func (S *SyncHashTable) Bucket(bucketNo int64) (*Entry, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.Bucket(bucketNo)
}

// GetBucketNo - See HashTable.GetBucketNo
func (S *SyncHashTable) GetBucketNo(key string) (int64, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.GetBucketNo(key)
}

// Count - See HashTable.Count
func (S *SyncHashTable) Count() int64 {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.Count()
}

// Stat - See HashTable.Stat
func (S *SyncHashTable) Stat(includeDistribution bool) *HashTableStat {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.hashTable.Stat(includeDistribution)
}
