package marina

import "errors"

// Package errors represent the failure conditions of fleet management.
// They are returned by the public API and can be checked with errors.Is.
var (
	// ErrMalformedRecord is returned when a required record field is missing or empty.
	ErrMalformedRecord = errors.New("marina: malformed record")

	// ErrUnknownCategory is returned when a location category token is not one
	// of slip, land, trailor or storage.
	ErrUnknownCategory = errors.New("marina: unknown location category")

	// ErrIncompleteLocation is returned when the location-specific field of a
	// record is missing.
	ErrIncompleteLocation = errors.New("marina: incomplete location data")

	// ErrCapacityExceeded is returned when inserting into a full fleet.
	ErrCapacityExceeded = errors.New("marina: fleet capacity exceeded")

	// ErrVesselNotFound is returned when a lookup by name finds no vessel.
	ErrVesselNotFound = errors.New("marina: no vessel with that name")

	// ErrExceedsBalance is returned when a payment is greater than or equal to
	// the outstanding balance.
	ErrExceedsBalance = errors.New("marina: payment exceeds balance")
)
