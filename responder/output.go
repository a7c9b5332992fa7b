package responder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
)

// WriteJSON answers the requests and writes the responses as one JSON array.
func (r *Responder) WriteJSON(w io.Writer, reqs []loader.StatRequest) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r.RespondAll(reqs)); err != nil {
		return fmt.Errorf("failed to write responses: %w", err)
	}
	return nil
}

// WriteText answers Bus and Stop requests with one line each:
//
//	Bus 256: 6 stops on route, 5 unique stops, 5950 route length, 1.36124 curvature
//	Bus 751: not found
//	Stop Samara: not found
//	Stop Prazhskaya: no buses
//	Stop Biryulyovo Zapadnoye: buses 256 828
//
// The curvature is left out when it is undefined.
func (r *Responder) WriteText(w io.Writer, reqs []loader.StatRequest) error {
	bw := bufio.NewWriter(w)
	for _, req := range reqs {
		line, err := r.textLine(req)
		if err != nil {
			return err
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (r *Responder) textLine(req loader.StatRequest) (string, error) {
	switch req.Type {
	case loader.TypeBus:
		info, err := r.Bus(req.Name)
		if err != nil {
			return fmt.Sprintf("Bus %s: %s", req.Name, r.errorMessage(req, err)), nil
		}
		line := fmt.Sprintf("Bus %s: %d stops on route, %d unique stops, %d route length",
			req.Name, info.StopCount, info.UniqueStopCount, info.RouteLength)
		if c, ok := info.Curvature(); ok {
			line += ", " + strconv.FormatFloat(c, 'g', 6, 64) + " curvature"
		}
		return line, nil
	case loader.TypeStop:
		buses, err := r.Stop(req.Name)
		if err != nil {
			return fmt.Sprintf("Stop %s: %s", req.Name, r.errorMessage(req, err)), nil
		}
		if len(buses) == 0 {
			return fmt.Sprintf("Stop %s: no buses", req.Name), nil
		}
		return fmt.Sprintf("Stop %s: buses %s", req.Name, strings.Join(buses, " ")), nil
	default:
		return "", fmt.Errorf("request %d: %w for text output: %s", req.ID, errUnsupportedRequest, req.Type)
	}
}
