package crt

// NoCollisions - Collision Resolution Technique that refuses any insert into an already occupied bucket
const NoCollisions int = 0

// Chaining - Collision Resolution Technique that always prepends a new entry to the bucket chain, duplicates included
const Chaining int = 1

// ChainingWithOverwrite - Collision Resolution Technique that overwrites an entry with equal key or prepends a new one
const ChainingWithOverwrite int = 2

// Name - Returns a human-readable name of the given technique, or an empty string if it is unknown
func Name(technique int) string {
	switch technique {
	case NoCollisions:
		return "none"
	case Chaining:
		return "chaining"
	case ChainingWithOverwrite:
		return "overwrite"
	}
	return ""
}

// Parse - Returns the technique corresponding to a name as returned by Name
func Parse(name string) (technique int, ok bool) {
	for _, t := range []int{NoCollisions, Chaining, ChainingWithOverwrite} {
		if Name(t) == name {
			return t, true
		}
	}
	return -1, false
}
