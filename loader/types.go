package loader

import (
	"github.com/theoremus-urban-solutions/transit-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// Request types.
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeMap   = "Map"
	TypeRoute = "Route"
)

// Document is a decoded input document.
type Document struct {
	BaseRequests    []BaseRequest      `json:"base_requests" validate:"dive"`
	StatRequests    []StatRequest      `json:"stat_requests" validate:"dive"`
	RenderSettings  *renderer.Settings `json:"render_settings,omitempty"`
	RoutingSettings *router.Settings   `json:"routing_settings,omitempty"`
}

// BaseRequest describes a stop or a bus to add to the catalogue.
type BaseRequest struct {
	Type string `json:"type" validate:"required,oneof=Stop Bus"`
	Name string `json:"name" validate:"required"`

	// Stop fields
	Latitude      *float64       `json:"latitude,omitempty" validate:"required_if=Type Stop"`
	Longitude     *float64       `json:"longitude,omitempty" validate:"required_if=Type Stop"`
	RoadDistances map[string]int `json:"road_distances,omitempty" validate:"dive,gte=0"`

	// Bus fields
	Stops       []string `json:"stops,omitempty" validate:"required_if=Type Bus,dive,required"`
	IsRoundtrip *bool    `json:"is_roundtrip,omitempty" validate:"required_if=Type Bus"`
}

// StatRequest is a read query answered after the catalogue is loaded.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required,oneof=Bus Stop Map Route"`
	Name string `json:"name,omitempty" validate:"required_if=Type Bus,required_if=Type Stop"`
	From string `json:"from,omitempty" validate:"required_if=Type Route"`
	To   string `json:"to,omitempty" validate:"required_if=Type Route"`
}
