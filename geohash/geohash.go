package geohash

import (
	"errors"
	"strings"
)

const (
	// MaxPrecision is the longest supported code length.
	MaxPrecision = 12

	// DefaultPrecision is the code length used by EncodeDefault (cells of
	// roughly 5m x 5m).
	DefaultPrecision = 9

	// alphabet is the 32-symbol geohash character set. Note the absence of
	// a, i, l and o.
	alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

	bitsPerChar = 5

	minLat, maxLat = -90.0, 90.0
	minLon, maxLon = -180.0, 180.0
)

var (
	// ErrInvalidPoint is returned when a latitude or longitude is out of
	// range.
	ErrInvalidPoint = errors.New("geohash: invalid geographic point")

	// ErrInvalidHash is returned when a code is empty, longer than
	// MaxPrecision or contains a character outside the alphabet.
	ErrInvalidHash = errors.New("geohash: invalid geohash")

	// ErrInvalidPrecision is returned when a precision is outside [1, 12].
	ErrInvalidPrecision = errors.New("geohash: invalid precision")
)

// Point is a geographic coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point lies within [-90, 90] x [-180, 180].
func (p Point) Valid() bool {
	return p.Lat >= minLat && p.Lat <= maxLat && p.Lon >= minLon && p.Lon <= maxLon
}

// Bounds is the latitude/longitude rectangle implied by a code.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Center returns the midpoint of the rectangle.
func (b Bounds) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Encode returns the geohash of p at the given precision (code length in
// characters, 1..MaxPrecision). Out-of-range points and precisions are
// rejected before any work is done.
func Encode(p Point, precision int) (string, error) {
	if !p.Valid() {
		return "", ErrInvalidPoint
	}

	if precision < 1 || precision > MaxPrecision {
		return "", ErrInvalidPrecision
	}

	var sb strings.Builder
	sb.Grow(precision)

	cell := Bounds{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}

	bit := 0
	index := 0
	even := true // longitude first

	for sb.Len() < precision {
		if even {
			mid := (cell.MinLon + cell.MaxLon) / 2
			if p.Lon >= mid {
				index = index<<1 | 1
				cell.MinLon = mid
			} else {
				index <<= 1
				cell.MaxLon = mid
			}
		} else {
			mid := (cell.MinLat + cell.MaxLat) / 2
			if p.Lat >= mid {
				index = index<<1 | 1
				cell.MinLat = mid
			} else {
				index <<= 1
				cell.MaxLat = mid
			}
		}

		even = !even

		if bit++; bit == bitsPerChar {
			sb.WriteByte(alphabet[index])
			index = 0
			bit = 0
		}
	}

	return sb.String(), nil
}

// EncodeDefault returns the geohash of p at DefaultPrecision.
func EncodeDefault(p Point) (string, error) {
	return Encode(p, DefaultPrecision)
}

// GetBounds returns the cell rectangle a code denotes by replaying the
// bit-interleaved bisection from the code's characters.
func GetBounds(code string) (Bounds, error) {
	if !validCode(code) {
		return Bounds{}, ErrInvalidHash
	}

	b := Bounds{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
	even := true

	for i := 0; i < len(code); i++ {
		index := strings.IndexByte(alphabet, code[i])

		for bit := bitsPerChar - 1; bit >= 0; bit-- {
			set := index>>bit&1 == 1

			if even {
				mid := (b.MinLon + b.MaxLon) / 2
				if set {
					b.MinLon = mid
				} else {
					b.MaxLon = mid
				}
			} else {
				mid := (b.MinLat + b.MaxLat) / 2
				if set {
					b.MinLat = mid
				} else {
					b.MaxLat = mid
				}
			}

			even = !even
		}
	}

	return b, nil
}

// Decode returns the center of the cell a code denotes. The result is lossy:
// any point within the cell encodes to the same code.
func Decode(code string) (Point, error) {
	b, err := GetBounds(code)
	if err != nil {
		return Point{}, err
	}

	return b.Center(), nil
}

func validCode(code string) bool {
	if len(code) == 0 || len(code) > MaxPrecision {
		return false
	}

	for i := 0; i < len(code); i++ {
		if strings.IndexByte(alphabet, code[i]) < 0 {
			return false
		}
	}

	return true
}
