// Package models holds the notary domain entities shared by stores,
// services and handlers.
package models

import "strings"

// TokenID is the unique integer identifier naming a star.
type TokenID uint64

// Address identifies an owner, delegate or operator. Addresses are stored
// lowercased so lookups are case-insensitive.
type Address string

// ZeroAddress is the sentinel rendered for "no delegate" and "no owner".
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// NormalizeAddress lowercases an address for storage and comparison.
func NormalizeAddress(a string) Address {
	return Address(strings.ToLower(strings.TrimSpace(a)))
}

// IsZero reports whether the address is empty or the zero sentinel.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

// Star is the registered entity. A star minted without coordinate data keeps
// all descriptive fields empty; only the ownership record distinguishes it
// from an unregistered token.
type Star struct {
	Token TokenID
	Name  string
	Story string
	Cent  string
	Dec   string
	Mag   string
}

// HasCoordinates reports whether the star carries coordinate data, i.e. was
// registered through star creation rather than a bare mint.
func (s Star) HasCoordinates() bool {
	return s.Cent != "" || s.Dec != "" || s.Mag != ""
}

// CoordinateKey is the composite key enforcing coordinate-tuple uniqueness,
// independent of token identity.
func CoordinateKey(cent, dec, mag string) string {
	return cent + "|" + dec + "|" + mag
}

// Info is the public 5-tuple rendering of a star. Coordinate components are
// re-prefixed; a bare or unregistered token renders as five empty strings.
type Info struct {
	Name  string `json:"name"`
	Story string `json:"story"`
	RA    string `json:"ra"`
	Dec   string `json:"dec"`
	Mag   string `json:"mag"`
}

// Info renders the star for the facade.
func (s Star) Info() Info {
	if !s.HasCoordinates() {
		return Info{}
	}
	return Info{
		Name:  s.Name,
		Story: s.Story,
		RA:    "ra_" + s.Cent,
		Dec:   "dec_" + s.Dec,
		Mag:   "mag_" + s.Mag,
	}
}
