package router

import (
	"encoding/json"
)

// ItemType distinguishes itinerary events.
type ItemType string

const (
	ItemWait ItemType = "Wait"
	ItemBus  ItemType = "Bus"
)

// Item is one itinerary event. Wait items carry StopName; Bus items carry
// Bus and SpanCount.
type Item struct {
	Type      ItemType
	StopName  string
	Bus       string
	SpanCount int
	Time      float64 // minutes
}

// MarshalJSON emits only the fields that belong to the item type.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Type == ItemWait {
		return json.Marshal(struct {
			Type     ItemType `json:"type"`
			StopName string   `json:"stop_name"`
			Time     float64  `json:"time"`
		}{it.Type, it.StopName, it.Time})
	}
	return json.Marshal(struct {
		Type      ItemType `json:"type"`
		Bus       string   `json:"bus"`
		SpanCount int      `json:"span_count"`
		Time      float64  `json:"time"`
	}{it.Type, it.Bus, it.SpanCount, it.Time})
}

// Itinerary is a minimum-time journey between two stops.
type Itinerary struct {
	Items     []Item
	TotalTime float64
}

// GetRoute finds the fastest itinerary between two stops by name.
func (r *Router) GetRoute(from, to string) (Itinerary, error) {
	fromV, ok := r.stopVertex[from]
	if !ok {
		return Itinerary{}, ErrNotFound
	}
	toV, ok := r.stopVertex[to]
	if !ok {
		return Itinerary{}, ErrNotFound
	}
	path, ok := r.graph.ShortestPath(fromV, toV)
	if !ok {
		return Itinerary{}, ErrNotFound
	}
	if len(path.Edges) == 0 {
		return Itinerary{Items: []Item{}}, nil
	}

	wait := r.settings.BusWaitTime
	items := make([]Item, 0, 2*len(path.Edges))
	items = append(items, Item{Type: ItemWait, StopName: from, Time: wait})

	prevLabel := -1
	for _, id := range path.Edges {
		e := r.graph.Edge(id)
		route := r.routes[e.Label]
		reboard := prevLabel != -1 && prevLabel != e.Label
		if !reboard && prevLabel != -1 && route.circular && e.To == toV && e.From != fromV {
			reboard = true
		}
		if reboard {
			items = append(items, Item{Type: ItemWait, StopName: r.vertexStop[e.From], Time: wait})
		}
		items = append(items, Item{
			Type:      ItemBus,
			Bus:       route.name,
			SpanCount: e.Span,
			Time:      e.Weight - wait,
		})
		prevLabel = e.Label
	}

	var total float64
	for _, it := range items {
		total += it.Time
	}
	return Itinerary{Items: items, TotalTime: total}, nil
}
