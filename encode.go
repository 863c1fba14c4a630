package marina

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file contains the line codec for the fleet file: a plain text file,
// one record per line, five comma-separated fields:
//
//	name,length,category,locationValue,fees
//
// The format is strictly positional. There is no header line and no quoting
// or escaping: a name containing a comma corrupts its record. Numeric fields
// parse tolerantly (unparsable text becomes zero). Both quirks are part of
// the format contract and are preserved deliberately.

// MaxTrailerTag is the maximum length of a trailer tag. Longer tags are
// truncated silently by the codec.
const MaxTrailerTag = 9

// parseInt parses an integer location value, tolerantly: unparsable text
// becomes zero.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseVessel parses a single fleet file record.
//
// Fields beyond the fifth are ignored. A failure at any field aborts the
// whole record; the returned error wraps one of ErrMalformedRecord,
// ErrUnknownCategory or ErrIncompleteLocation.
func ParseVessel(line string) (Vessel, error) {
	fields := strings.Split(line, ",")

	name := fields[0]
	if name == "" {
		return Vessel{}, fmt.Errorf("%w: missing vessel name", ErrMalformedRecord)
	}

	if len(fields) < 2 {
		return Vessel{}, fmt.Errorf("%w: missing length", ErrMalformedRecord)
	}
	length := ParseLength(fields[1])

	if len(fields) < 3 {
		return Vessel{}, fmt.Errorf("%w: missing location category", ErrMalformedRecord)
	}
	category, err := ParseCategory(fields[2])
	if err != nil {
		return Vessel{}, err
	}

	if len(fields) < 4 {
		return Vessel{}, fmt.Errorf("%w: missing %s value", ErrIncompleteLocation, category)
	}
	var location Location
	switch category {
	case Slip:
		location = SlipLocation{Number: parseInt(fields[3])}
	case Land:
		if fields[3] == "" {
			return Vessel{}, fmt.Errorf("%w: missing bay label", ErrIncompleteLocation)
		}
		location = LandLocation{Bay: fields[3][0]}
	case Trailer:
		tag := fields[3]
		if len(tag) > MaxTrailerTag {
			tag = tag[:MaxTrailerTag]
		}
		location = TrailerLocation{Tag: tag}
	case Storage:
		location = StorageLocation{Spot: parseInt(fields[3])}
	}

	if len(fields) < 5 {
		return Vessel{}, fmt.Errorf("%w: missing fee data", ErrMalformedRecord)
	}
	fees := ParseMoney(fields[4], DefaultCurrency)

	return Vessel{Name: name, Length: length, Location: location, Fees: fees}, nil
}

// EncodeVessel formats a vessel as a single fleet file record. It is the
// deterministic inverse of ParseVessel, except that fractional lengths are
// written with no decimals and do not survive a round-trip.
func EncodeVessel(v Vessel) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s", v.Name, v.Length, v.Location.Category(), v.Location.Detail(), v.Fees.Fixed())
}

// DecodeFleet reads fleet file records from r and returns a sorted Fleet.
//
// Records that fail to parse are dropped, and loading stops once the fleet
// is at capacity; both happen silently, which mirrors the behavior of the
// original fleet files this format comes from.
func DecodeFleet(r io.Reader) (*Fleet, error) {
	fleet := NewFleet()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if fleet.Len() >= MaxVessels {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}
		v, err := ParseVessel(line)
		if err != nil {
			continue // Drop the record, keep loading
		}
		fleet.vessels = append(fleet.vessels, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	fleet.sortByName()
	return fleet, nil
}

// EncodeFleet persists the fleet to w, one record per line, in sorted order.
func EncodeFleet(w io.Writer, f *Fleet) error {
	for v := range f.All() {
		if _, err := fmt.Fprintln(w, EncodeVessel(v)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}
