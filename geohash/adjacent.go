package geohash

import "strings"

// Direction is a cardinal direction for neighbor computation.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Neighbors holds the eight codes adjacent to a cell, all at the same length
// as the source code.
type Neighbors struct {
	North     string
	South     string
	East      string
	West      string
	NorthEast string
	NorthWest string
	SouthEast string
	SouthWest string
}

// The substitution tables map a code's last character to the last character
// of its neighbor, indexed by direction and by the parity of the code
// length (even-length codes split longitude first at their final bit, odd
// ones latitude). borders lists the characters whose cell touches the parent
// cell's edge in that direction, which forces the parent itself to be
// shifted first.
var (
	neighborTable = [4][2]string{
		{"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"}, // north
		{"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"}, // south
		{"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"}, // east
		{"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"}, // west
	}

	borderTable = [4][2]string{
		{"prxz", "bcfguvyz"}, // north
		{"028b", "0145hjnp"}, // south
		{"bcfguvyz", "prxz"}, // east
		{"0145hjnp", "028b"}, // west
	}
)

// Adjacent returns the code of the neighboring cell of the same length in
// the given cardinal direction.
//
// When the code's last character lies on the border of its parent cell in
// that direction, the parent's own neighbor is resolved first (recursively,
// bounded by the code length) and spliced in as the result's prefix. A
// single-character code has no parent to adjust and wraps within the top
// level cells.
func Adjacent(code string, dir Direction) (string, error) {
	if !validCode(code) {
		return "", ErrInvalidHash
	}

	if dir < North || dir > West {
		return "", ErrInvalidHash
	}

	last := code[len(code)-1]
	parity := len(code) % 2
	prefix := code[:len(code)-1]

	if strings.IndexByte(borderTable[dir][parity], last) >= 0 && len(code) > 1 {
		adjusted, err := Adjacent(prefix, dir)
		if err != nil {
			return "", err
		}
		prefix = adjusted
	}

	sub := strings.IndexByte(neighborTable[dir][parity], last)
	if sub < 0 {
		return "", ErrInvalidHash
	}

	return prefix + string(alphabet[sub]), nil
}

// AllAdjacent returns the four cardinal and four diagonal neighbors of a
// cell. Diagonals are composed from the cardinal results (east or west of
// the north and south neighbors); the first error encountered is returned
// with the zero Neighbors.
func AllAdjacent(code string) (Neighbors, error) {
	var (
		n   Neighbors
		err error
	)

	if n.North, err = Adjacent(code, North); err != nil {
		return Neighbors{}, err
	}

	if n.South, err = Adjacent(code, South); err != nil {
		return Neighbors{}, err
	}

	if n.East, err = Adjacent(code, East); err != nil {
		return Neighbors{}, err
	}

	if n.West, err = Adjacent(code, West); err != nil {
		return Neighbors{}, err
	}

	if n.NorthEast, err = Adjacent(n.North, East); err != nil {
		return Neighbors{}, err
	}

	if n.NorthWest, err = Adjacent(n.North, West); err != nil {
		return Neighbors{}, err
	}

	if n.SouthEast, err = Adjacent(n.South, East); err != nil {
		return Neighbors{}, err
	}

	if n.SouthWest, err = Adjacent(n.South, West); err != nil {
		return Neighbors{}, err
	}

	return n, nil
}
