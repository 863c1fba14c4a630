package marina

import (
	"errors"
	"testing"
)

func TestCategory_String(t *testing.T) {
	testCases := []struct {
		category Category
		want     string
	}{
		{Slip, "slip"},
		{Land, "land"},
		{Trailer, "trailor"}, // legacy file format spelling
		{Storage, "storage"},
		{Category(42), "unknown"},
	}

	for _, tc := range testCases {
		if got := tc.category.String(); got != tc.want {
			t.Errorf("Category(%d).String() = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		token   string
		want    Category
		wantErr bool
	}{
		{"slip", Slip, false},
		{"SLIP", Slip, false},
		{"Land", Land, false},
		{"trailor", Trailer, false},
		{"TRAILOR", Trailer, false},
		{"storage", Storage, false},
		{"trailer", 0, true}, // the correct spelling is not a valid token
		{"dock", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ParseCategory(tc.token)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Fatalf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tc.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) returned an unexpected error: %v", tc.token, err)
			}
			if got != tc.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tc.token, got, tc.want)
			}
		})
	}
}

func TestLocation_Detail(t *testing.T) {
	testCases := []struct {
		location Location
		category Category
		detail   string
	}{
		{SlipLocation{Number: 14}, Slip, "14"},
		{LandLocation{Bay: 'B'}, Land, "B"},
		{TrailerLocation{Tag: "BIGTOW"}, Trailer, "BIGTOW"},
		{StorageLocation{Spot: 27}, Storage, "27"},
	}

	for _, tc := range testCases {
		if got := tc.location.Category(); got != tc.category {
			t.Errorf("%T.Category() = %v, want %v", tc.location, got, tc.category)
		}
		if got := tc.location.Detail(); got != tc.detail {
			t.Errorf("%T.Detail() = %q, want %q", tc.location, got, tc.detail)
		}
	}
}
