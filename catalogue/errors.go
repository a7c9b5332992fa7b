package catalogue

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a stop or route name is unknown.
	ErrNotFound = errors.New("not found")
	// ErrRouteExists is returned by AddBus for a name that is already taken.
	ErrRouteExists = errors.New("route already exists")
	// ErrEmptyRoute is returned by AddBus for an empty stop sequence.
	ErrEmptyRoute = errors.New("route has no stops")
	// ErrNegativeDistance is returned by AddDistance for a negative length.
	ErrNegativeDistance = errors.New("negative road distance")
	// ErrMissingDistance matches every *MissingDistanceError.
	ErrMissingDistance = errors.New("missing road distance")
)

// MissingDistanceError reports a consecutive stop pair of a route that has no
// road distance in the traversed direction.
type MissingDistanceError struct {
	Route string
	From  string
	To    string
}

func (e *MissingDistanceError) Error() string {
	if e.Route == "" {
		return fmt.Sprintf("missing road distance from %q to %q", e.From, e.To)
	}
	return fmt.Sprintf("route %q: missing road distance from %q to %q", e.Route, e.From, e.To)
}

func (e *MissingDistanceError) Is(target error) bool {
	return target == ErrMissingDistance
}

// UndefinedStopsError lists placeholder stops that never got coordinates.
type UndefinedStopsError struct {
	Names []string
}

func (e *UndefinedStopsError) Error() string {
	return fmt.Sprintf("%d stop(s) referenced but never defined: %s", len(e.Names), strings.Join(e.Names, ", "))
}
