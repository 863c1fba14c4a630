// Package marina provides the record model, codecs and billing logic for a
// small single-marina fleet manager. It is designed to be local-first and
// auditable: the whole fleet lives in a plain comma-delimited text file that
// is loaded into memory at startup, mutated in place, and rewritten on exit.
//
// The core functionalities include:
//   - Record Model: the Vessel entity and its per-category location payload
//     (slip, land, trailer or storage).
//   - Line Codec: parsing and formatting of the fixed five-field record
//     format used by the fleet file.
//   - Fleet Store: an ordered, capacity-bounded collection of vessels kept
//     sorted by name (case-insensitive) after every mutation.
//   - Billing Engine: monthly per-foot charges by location category and
//     payment application with balance validation.
//   - Persistence: loading and saving the fleet file.
//
// This package serves as the foundational logic for the `bms` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package marina
