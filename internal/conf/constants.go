package conf

// DefaultCapacity - Number of buckets in a hash table created without an explicit capacity
const DefaultCapacity int64 = 4

// DigestPrefixLength - Number of leading hexadecimal characters of the SHA-256 digest that forms the key digest
const DigestPrefixLength int = 8
