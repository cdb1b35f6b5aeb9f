// Package soulmath computes the date-derived values shown on a SOS Evolution
// profile: the tropical zodiac sign for a birthday and the numerology life
// path number for a birth date.
//
// Everything here is a pure function over immutable tables. There is no I/O
// and no shared mutable state, so every function is safe for concurrent use.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - Invalid input is reported through ErrInvalidInput / ErrInvalidDate,
//     never by panicking
package soulmath
