package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Collision - Custom error to inform that the bucket a key maps to is already occupied.
// It is returned by the NoCollisions technique regardless of whether the occupant has the same key or not.
type Collision struct {
	msg string
}

// NewCollision - Returns a Collision error with a custom message
func NewCollision(msg string) Collision {
	return Collision{msg: msg}
}

// Error - Used to notify that a bucket was already occupied
func (C Collision) Error() string {
	if C.msg == "" {
		return "hash collision or same key/value pair already exists"
	}
	return C.msg
}

// Is - Makes any Collision match any other Collision in a call to errors.Is, regardless of message
func (C Collision) Is(target error) bool {
	_, ok := target.(Collision)
	return ok
}
