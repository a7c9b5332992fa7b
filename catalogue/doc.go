/*
Package catalogue provides the in-memory store of a transit network: stops,
bus routes, directed road distances and the stop to route index.

The catalogue is filled during a write phase and then queried read-only.
It is not safe for concurrent mutation; once loading is finished it can be
shared between goroutines as long as nobody mutates it.

# Basic Usage

	cat := catalogue.New()
	cat.AddStop("Marushkino", geo.Coordinates{Lat: 55.595884, Lng: 37.209755})
	cat.AddStop("Rasskazovka", geo.Coordinates{Lat: 55.632761, Lng: 37.333324})
	if err := cat.AddDistance("Marushkino", "Rasskazovka", 9900); err != nil {
	    return err
	}
	if err := cat.AddBus("750", []string{"Marushkino", "Rasskazovka"}, false); err != nil {
	    return err
	}

	info, err := cat.GetRouteInfo("750")
	switch {
	case errors.Is(err, catalogue.ErrNotFound):
	    // unknown route
	case errors.Is(err, catalogue.ErrMissingDistance):
	    // the input data lacks a road distance the route needs
	}

# Identity

Every stop lives in an append-only slot addressed by a StopID. Routes and
the distance table hold StopIDs, never copies, so updating a stop's
coordinates is visible everywhere and creating new stops never invalidates
existing ones.

# Placeholder stops

A distance or a route that names an unknown stop creates a placeholder with
zero coordinates. A later AddStop for that name fills it in. Placeholders
that are never defined are listed by Placeholders; with WithStrictStops,
Validate reports them as an error.

# Distances

Distances are directed. AddDistance(a, b, d) always sets a→b and sets b→a
to d only when b→a has no value yet, so an explicit reverse distance is
never overwritten.
*/
package catalogue
