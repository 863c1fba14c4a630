package marina

import (
	"fmt"
	"os"
)

// LoadFleet opens, decodes and returns the fleet stored at path.
//
// The returned error wraps the underlying open error, so callers can detect
// a missing file with errors.Is(err, fs.ErrNotExist) and start empty.
func LoadFleet(path string) (*Fleet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open fleet file %q: %w", path, err)
	}
	defer f.Close()

	fleet, err := DecodeFleet(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode fleet file %q: %w", path, err)
	}
	return fleet, nil
}

// SaveFleet rewrites the whole fleet to path.
func SaveFleet(path string, fleet *Fleet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening fleet file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeFleet(f, fleet)
}
