package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError reports a malformed line in a text document.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next non-blank line.
func (lr *lineReader) next() (string, bool) {
	for lr.scanner.Scan() {
		lr.line++
		if text := strings.TrimSpace(lr.scanner.Text()); text != "" {
			return text, true
		}
	}
	return "", false
}

func (lr *lineReader) count() (int, bool, error) {
	text, ok := lr.next()
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, false, &SyntaxError{Line: lr.line, Msg: fmt.Sprintf("expected a line count, got %q", text)}
	}
	return n, true, nil
}

// ParseText reads a text document: a count line followed by that many
// Stop/Bus commands, then an optional count line followed by that many
// Bus/Stop queries.
//
//	Stop Tolstopaltsevo: 55.611087, 37.20829, 3900m to Marushkino
//	Bus 256: Biryulyovo Zapadnoye > Biryusinka > Biryulyovo Zapadnoye
//	Bus 750: Tolstopaltsevo - Marushkino - Rasskazovka
//
// '>' separates the stops of a circular route, " - " those of a linear one.
func (l *Loader) ParseText(r io.Reader) (*Document, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}
	doc := &Document{}

	n, ok, err := lr.count()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &SyntaxError{Line: 1, Msg: "empty document"}
	}
	for i := 0; i < n; i++ {
		text, ok := lr.next()
		if !ok {
			return nil, &SyntaxError{Line: lr.line, Msg: fmt.Sprintf("expected %d base commands, got %d", n, i)}
		}
		req, err := parseCommand(text)
		if err != nil {
			return nil, &SyntaxError{Line: lr.line, Msg: err.Error()}
		}
		doc.BaseRequests = append(doc.BaseRequests, req)
	}

	n, ok, err = lr.count()
	if err != nil {
		return nil, err
	}
	for i := 0; ok && i < n; i++ {
		text, more := lr.next()
		if !more {
			return nil, &SyntaxError{Line: lr.line, Msg: fmt.Sprintf("expected %d stat queries, got %d", n, i)}
		}
		req, err := parseQuery(text, i+1)
		if err != nil {
			return nil, &SyntaxError{Line: lr.line, Msg: err.Error()}
		}
		doc.StatRequests = append(doc.StatRequests, req)
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text document: %w", err)
	}

	if err := l.Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseCommand(line string) (BaseRequest, error) {
	command, rest, ok := strings.Cut(line, " ")
	if !ok {
		return BaseRequest{}, fmt.Errorf("malformed command %q", line)
	}
	name, description, ok := strings.Cut(rest, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return BaseRequest{}, fmt.Errorf("malformed command %q", line)
	}

	switch command {
	case TypeStop:
		return parseStop(name, description)
	case TypeBus:
		return parseBus(name, description)
	default:
		return BaseRequest{}, fmt.Errorf("unknown command %q", command)
	}
}

func parseStop(name, description string) (BaseRequest, error) {
	parts := strings.Split(description, ",")
	if len(parts) < 2 {
		return BaseRequest{}, fmt.Errorf("stop %q: expected latitude and longitude", name)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return BaseRequest{}, fmt.Errorf("stop %q: bad latitude: %w", name, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return BaseRequest{}, fmt.Errorf("stop %q: bad longitude: %w", name, err)
	}

	req := BaseRequest{Type: TypeStop, Name: name, Latitude: &lat, Longitude: &lng}
	for _, part := range parts[2:] {
		meters, to, ok := strings.Cut(strings.TrimSpace(part), "m to ")
		to = strings.TrimSpace(to)
		if !ok || to == "" {
			return BaseRequest{}, fmt.Errorf("stop %q: malformed distance %q", name, strings.TrimSpace(part))
		}
		d, err := strconv.Atoi(strings.TrimSpace(meters))
		if err != nil {
			return BaseRequest{}, fmt.Errorf("stop %q: bad distance to %q: %w", name, to, err)
		}
		if req.RoadDistances == nil {
			req.RoadDistances = make(map[string]int)
		}
		req.RoadDistances[to] = d
	}
	return req, nil
}

func parseBus(name, description string) (BaseRequest, error) {
	circular := strings.Contains(description, ">")
	sep := " - "
	if circular {
		sep = ">"
	}
	var stops []string
	for _, s := range strings.Split(description, sep) {
		if s = strings.TrimSpace(s); s != "" {
			stops = append(stops, s)
		}
	}
	if len(stops) == 0 {
		return BaseRequest{}, fmt.Errorf("bus %q has no stops", name)
	}
	return BaseRequest{Type: TypeBus, Name: name, Stops: stops, IsRoundtrip: &circular}, nil
}

func parseQuery(line string, id int) (StatRequest, error) {
	kind, name, ok := strings.Cut(line, " ")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return StatRequest{}, fmt.Errorf("malformed query %q", line)
	}
	switch kind {
	case TypeBus, TypeStop:
		return StatRequest{ID: id, Type: kind, Name: name}, nil
	default:
		return StatRequest{}, fmt.Errorf("unknown query %q", kind)
	}
}
