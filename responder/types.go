package responder

import "github.com/theoremus-urban-solutions/transit-catalogue/router"

// ErrorMessage is the error_message of a response to an unknown stop, bus or
// an unreachable destination.
const ErrorMessage = "not found"

// BusResponse answers a Bus request. Curvature is null when the route's
// great-circle length is zero.
type BusResponse struct {
	RequestID       int      `json:"request_id"`
	Curvature       *float64 `json:"curvature"`
	RouteLength     int      `json:"route_length"`
	StopCount       int      `json:"stop_count"`
	UniqueStopCount int      `json:"unique_stop_count"`
}

// StopResponse answers a Stop request with the sorted names of the buses
// serving the stop.
type StopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

// RouteResponse answers a Route request.
type RouteResponse struct {
	RequestID int           `json:"request_id"`
	Items     []router.Item `json:"items"`
	TotalTime float64       `json:"total_time"`
}

// MapResponse answers a Map request with an SVG document.
type MapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

// ErrorResponse answers any request that could not be served.
type ErrorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}
