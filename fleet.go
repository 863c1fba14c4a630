package marina

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

// MaxVessels is the capacity of a Fleet.
const MaxVessels = 120

// Fleet represents the full set of managed vessel records for one marina.
//
// In a Fleet vessels are always in ascending case-insensitive name order.
// Vessels are stored by value and exclusively owned by the Fleet; mutations
// may reorder or shift entries, so callers must not hold on to positions.
type Fleet struct {
	vessels []Vessel
}

// NewFleet creates an empty fleet.
func NewFleet() *Fleet {
	return &Fleet{vessels: make([]Vessel, 0, MaxVessels)}
}

// Len returns the number of vessels in the fleet.
func (f *Fleet) Len() int { return len(f.vessels) }

// Insert adds a vessel and restores the name order. It fails with
// ErrCapacityExceeded when the fleet is full.
//
// There is no uniqueness check: a duplicate name is accepted, and lookups
// return the first match in sorted order thereafter.
func (f *Fleet) Insert(v Vessel) error {
	if len(f.vessels) >= MaxVessels {
		return fmt.Errorf("%w: fleet already holds %d vessels", ErrCapacityExceeded, MaxVessels)
	}
	f.vessels = append(f.vessels, v)
	f.sortByName()
	return nil
}

// Find returns the first vessel whose name matches, case-insensitively.
func (f *Fleet) Find(name string) (Vessel, error) {
	i := f.indexOf(name)
	if i < 0 {
		return Vessel{}, fmt.Errorf("%w: %q", ErrVesselNotFound, name)
	}
	return f.vessels[i], nil
}

// Remove deletes the first vessel whose name matches, case-insensitively.
// Subsequent vessels shift left by one, so the name order is preserved
// without a re-sort. On a miss the fleet is left unchanged.
func (f *Fleet) Remove(name string) error {
	i := f.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrVesselNotFound, name)
	}
	f.vessels = slices.Delete(f.vessels, i, i+1)
	return nil
}

// All returns an iterator over the vessels in name order. It is a read-only
// view: the yielded values are copies.
func (f *Fleet) All() iter.Seq[Vessel] {
	return func(yield func(Vessel) bool) {
		for _, v := range f.vessels {
			if !yield(v) {
				return
			}
		}
	}
}

// indexOf returns the position of the first vessel matching name,
// case-insensitively, or -1.
func (f *Fleet) indexOf(name string) int {
	for i, v := range f.vessels {
		if strings.EqualFold(v.Name, name) {
			return i
		}
	}
	return -1
}

// sortByName sorts the fleet by name, case-insensitively. The sort is
// stable, so vessels with equal names keep their relative order.
func (f *Fleet) sortByName() {
	sort.SliceStable(f.vessels, func(i, j int) bool {
		return strings.ToLower(f.vessels[i].Name) < strings.ToLower(f.vessels[j].Name)
	})
}
