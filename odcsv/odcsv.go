// SPDX-License-Identifier: MIT

// Package odcsv loads origin-destination demand matrices from CSV.
//
// The format is the exercise's single external input: three columns
// (origin name, destination name, trip volume), no header row. Identifiers
// are node *names*; matching them against link node IDs is the assign
// package's job, through the network's id↔name registry.
//
// Rows for the same ordered pair accumulate (volumes are summed), so a
// file split by trip purpose still loads into one matrix.
//
// Errors carry the 1-based line number of the offending row:
//
//	ErrBadRecord - wrong column count or malformed CSV.
//	ErrBadVolume - volume not a number, or negative.
package odcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fourstep/assign"
)

// Sentinel errors for OD file loading.
var (
	// ErrBadRecord indicates a row with the wrong column count or CSV syntax.
	ErrBadRecord = errors.New("odcsv: malformed record")

	// ErrBadVolume indicates a trip volume that is not a non-negative number.
	ErrBadVolume = errors.New("odcsv: bad trip volume")
)

// fieldsPerRecord is the fixed column count: origin, destination, volume.
const fieldsPerRecord = 3

// Read parses a headerless three-column OD file into a demand matrix.
//
// Complexity: O(R) for R rows.
func Read(r io.Reader) (assign.Demand, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldsPerRecord
	cr.TrimLeadingSpace = true

	dem := assign.NewDemand()
	line := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}

		origin := strings.TrimSpace(record[0])
		dest := strings.TrimSpace(record[1])
		vol, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadVolume, line, record[2])
		}
		if vol < 0 {
			return nil, fmt.Errorf("%w: line %d: negative volume %g", ErrBadVolume, line, vol)
		}

		key := assign.ODKey{Origin: origin, Destination: dest}
		dem[key] += vol
	}

	return dem, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (assign.Demand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
