package assign

import (
	"errors"
	"fmt"
)

// Sentinel errors for demand lookup and assignment.
var (
	// ErrMissingDemand indicates an OD pair referenced by links has no
	// entry in the demand matrix.
	ErrMissingDemand = errors.New("assign: no demand entry for OD pair")

	// ErrShapeMismatch indicates a probability or state column whose
	// length differs from the network's link table.
	ErrShapeMismatch = errors.New("assign: column length does not match link table")
)

// ODKey identifies one ordered origin-destination pair by node names.
type ODKey struct {
	Origin, Destination string
}

// Demand maps ordered OD pairs to trip volumes (trips/period).
// Keys are node names; id→name translation is the caller's (Assign's) job.
type Demand map[ODKey]float64

// NewDemand returns an empty demand matrix.
func NewDemand() Demand { return make(Demand) }

// Set records the trip volume for the ordered pair (origin, destination).
func (d Demand) Set(origin, destination string, trips float64) {
	d[ODKey{Origin: origin, Destination: destination}] = trips
}

// Trips returns the volume for the ordered pair (origin, destination).
// A missing entry is ErrMissingDemand carrying both names.
func (d Demand) Trips(origin, destination string) (float64, error) {
	trips, ok := d[ODKey{Origin: origin, Destination: destination}]
	if !ok {
		return 0, fmt.Errorf("%w: %s → %s", ErrMissingDemand, origin, destination)
	}

	return trips, nil
}
