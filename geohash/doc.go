// Package geohash implements the geohash spatial codec: a bidirectional
// mapping between geographic coordinates and hierarchical base32 strings
// whose shared prefixes denote nested rectangular cells.
//
// Encoding alternately bisects the longitude and latitude ranges (longitude
// first), emitting one bit per comparison and packing five bits per output
// character through the alphabet "0123456789bcdefghjkmnpqrstuvwxyz".
// Decoding replays the bisection to recover the cell rectangle; Decode
// returns its midpoint, so a round trip is lossy within half a cell.
//
// Adjacent computes the neighboring cell in a cardinal direction via fixed
// substitution tables, recursing into the parent cell when the code's last
// character lies on the relevant border. All functions are pure; every call
// returns freshly allocated results.
package geohash
