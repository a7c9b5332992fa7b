// Package svg is a small SVG document model: polylines, circles and text
// with shared path properties, rendered in insertion order.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Point is a position in image coordinates.
type Point struct {
	X, Y float64
}

// LineCap is the stroke-linecap value.
type LineCap string

const (
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"
)

// LineJoin is the stroke-linejoin value.
type LineJoin string

const (
	LineJoinArcs      LineJoin = "arcs"
	LineJoinBevel     LineJoin = "bevel"
	LineJoinMiter     LineJoin = "miter"
	LineJoinMiterClip LineJoin = "miter-clip"
	LineJoinRound     LineJoin = "round"
)

// PathProps are the fill and stroke attributes shared by all shapes. Unset
// fields are not rendered.
type PathProps struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	LineCap     LineCap
	LineJoin    LineJoin
}

func (p PathProps) writeAttrs(w *bufio.Writer) {
	if p.Fill.IsSet() {
		fmt.Fprintf(w, ` fill="%s"`, escape(p.Fill.String()))
	}
	if p.Stroke.IsSet() {
		fmt.Fprintf(w, ` stroke="%s"`, escape(p.Stroke.String()))
	}
	if p.StrokeWidth != 0 {
		fmt.Fprintf(w, ` stroke-width="%s"`, formatNumber(p.StrokeWidth))
	}
	if p.LineCap != "" {
		fmt.Fprintf(w, ` stroke-linecap="%s"`, p.LineCap)
	}
	if p.LineJoin != "" {
		fmt.Fprintf(w, ` stroke-linejoin="%s"`, p.LineJoin)
	}
}

// Object is a renderable SVG element.
type Object interface {
	render(w *bufio.Writer)
}

// Circle is a <circle> element.
type Circle struct {
	PathProps
	Center Point
	Radius float64
}

func (c *Circle) render(w *bufio.Writer) {
	fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s"`,
		formatNumber(c.Center.X), formatNumber(c.Center.Y), formatNumber(c.Radius))
	c.writeAttrs(w)
	w.WriteString("/>")
}

// Polyline is a <polyline> element.
type Polyline struct {
	PathProps
	Points []Point
}

// AddPoint appends a vertex.
func (p *Polyline) AddPoint(pt Point) *Polyline {
	p.Points = append(p.Points, pt)
	return p
}

func (p *Polyline) render(w *bufio.Writer) {
	w.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(formatNumber(pt.X))
		w.WriteByte(',')
		w.WriteString(formatNumber(pt.Y))
	}
	w.WriteByte('"')
	p.writeAttrs(w)
	w.WriteString("/>")
}

// Text is a <text> element.
type Text struct {
	PathProps
	Position   Point
	Offset     Point
	FontSize   int
	FontFamily string
	FontWeight string
	Data       string
}

func (t *Text) render(w *bufio.Writer) {
	w.WriteString("<text")
	t.writeAttrs(w)
	fmt.Fprintf(w, ` x="%s" y="%s" dx="%s" dy="%s" font-size="%d"`,
		formatNumber(t.Position.X), formatNumber(t.Position.Y),
		formatNumber(t.Offset.X), formatNumber(t.Offset.Y), t.FontSize)
	if t.FontFamily != "" {
		fmt.Fprintf(w, ` font-family="%s"`, escape(t.FontFamily))
	}
	if t.FontWeight != "" {
		fmt.Fprintf(w, ` font-weight="%s"`, escape(t.FontWeight))
	}
	w.WriteByte('>')
	w.WriteString(escape(t.Data))
	w.WriteString("</text>")
}

// Document is an ordered list of objects.
type Document struct {
	objects []Object
}

// Add appends an object; later objects are drawn on top.
func (d *Document) Add(o Object) {
	d.objects = append(d.objects, o)
}

// Len returns the number of objects.
func (d *Document) Len() int { return len(d.objects) }

// Render writes the document as a standalone SVG file.
func (d *Document) Render(out io.Writer) error {
	w := bufio.NewWriter(out)
	w.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	w.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")
	for _, o := range d.objects {
		w.WriteString("  ")
		o.render(w)
		w.WriteByte('\n')
	}
	w.WriteString("</svg>")
	return w.Flush()
}

// String renders the document to a string.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string { return escaper.Replace(s) }
