package marina

import (
	"fmt"
	"strconv"
	"strings"
)

// Category identifies where a vessel is kept in the marina. It determines
// both the shape of the location payload and the monthly billing rate.
type Category int

const (
	// Slip is a numbered slip in the water.
	Slip Category = iota
	// Land is a lettered bay on land.
	Land
	// Trailer is a boat on a tagged trailer.
	Trailer
	// Storage is a numbered spot in the storage building.
	Storage
)

// String returns the category token as persisted in the fleet file.
// The "trailor" spelling is part of the file format and must not change.
func (c Category) String() string {
	switch c {
	case Slip:
		return "slip"
	case Land:
		return "land"
	case Trailer:
		return "trailor"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

// ParseCategory parses a category token, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "slip":
		return Slip, nil
	case "land":
		return Land, nil
	case "trailor":
		return Trailer, nil
	case "storage":
		return Storage, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Location defines the common interface for the per-category location
// payload of a vessel. Exactly one concrete type exists per Category, each
// carrying only its own field.
type Location interface {
	Category() Category // Category returns the location category of the payload.
	Detail() string     // Detail returns the location value as persisted in the fleet file.
}

// SlipLocation places a vessel in a numbered slip (expected 1-85, not validated).
type SlipLocation struct {
	Number int
}

func (l SlipLocation) Category() Category { return Slip }
func (l SlipLocation) Detail() string     { return strconv.Itoa(l.Number) }

// LandLocation places a vessel in a lettered bay (expected A-Z, not validated).
type LandLocation struct {
	Bay byte
}

func (l LandLocation) Category() Category { return Land }
func (l LandLocation) Detail() string     { return string(l.Bay) }

// TrailerLocation places a vessel on a trailer identified by a short tag.
// Tags are at most MaxTrailerTag characters; the codec truncates longer ones.
type TrailerLocation struct {
	Tag string
}

func (l TrailerLocation) Category() Category { return Trailer }
func (l TrailerLocation) Detail() string     { return l.Tag }

// StorageLocation places a vessel in a numbered storage spot (expected 1-50,
// not validated).
type StorageLocation struct {
	Spot int
}

func (l StorageLocation) Category() Category { return Storage }
func (l StorageLocation) Detail() string     { return strconv.Itoa(l.Spot) }

// Vessel is one entry in the fleet.
type Vessel struct {
	Name     string   // Name is the case-insensitive lookup key. Uniqueness is not enforced.
	Length   Length   // Length in feet, the billing multiplier.
	Location Location // Location is the per-category payload.
	Fees     Money    // Fees is the outstanding balance owed by the owner.
}
