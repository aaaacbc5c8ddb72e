// Package collision tracks name-to-hash assignments and detects when two
// distinct names hash to the same 64-bit identifier.
package collision

import "errors"

var (
	// ErrHashCollision is returned when a caller supplies a raw hash directly
	// (bypassing name tracking) and that hash was already claimed.
	ErrHashCollision = errors.New("collision: hash already claimed")

	// ErrInvalidName is returned for an empty entry name.
	ErrInvalidName = errors.New("collision: invalid entry name")

	// ErrDuplicateName is returned when the same name is tracked twice.
	ErrDuplicateName = errors.New("collision: duplicate entry name")
)

// Tracker tracks entry names and detects hash collisions during encoding. It
// maintains a hash-to-name map and an ordered list of names for payload
// encoding when collisions are detected.
type Tracker struct {
	names        map[uint64]string
	namesList    []string
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// TrackID tracks a hash directly, without a name. Returns ErrHashCollision
// if the hash was already used; without a name, a collision here cannot be
// resolved by falling back to stored names.
func (t *Tracker) TrackID(hash uint64) error {
	if _, exists := t.names[hash]; exists {
		return ErrHashCollision
	}
	t.names[hash] = ""

	return nil
}

// TrackName tracks a name with its hash. A hash collision between two
// distinct names is not an error: it sets the collision flag so the caller
// knows to fall back to storing full names.
func (t *Tracker) TrackName(name string, hash uint64) error {
	if name == "" {
		return ErrInvalidName
	}

	if existing, exists := t.names[hash]; exists {
		if existing != name {
			t.hasCollision = true
		} else {
			return ErrDuplicateName
		}
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision reports whether a hash collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the ordered list of tracked names.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked state, preserving map capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
