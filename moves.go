// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package floors

// Kind is the effect a single input byte has on the floor.
type Kind int

const (
	Ignored Kind = iota
	Up
	Down
)

const (
	// OPEN moves up one floor.
	OPEN byte = '('

	// CLOSE moves down one floor.
	CLOSE byte = ')'

	// Basement is the floor that trips the latch.
	Basement = -1
)

func init() {
	moves[OPEN] = Up
	moves[CLOSE] = Down
}

var (
	moves = [256]Kind{}
)

// Classify returns the kind of move for the byte.
// Anything other than OPEN or CLOSE is Ignored.
func Classify(ch byte) Kind {
	return moves[ch]
}

func (k Kind) String() string {
	switch k {
	case Ignored:
		return "Ignored"
	case Up:
		return "Up"
	case Down:
		return "Down"
	}
	return "Kind(?)"
}
