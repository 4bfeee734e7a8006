package document

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	jsoniter "github.com/json-iterator/go"
)

// Rect is a rectangle in result output.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoxResult is the computed layout of one element.
type BoxResult struct {
	Name     string     `json:"name"`
	Geometry Rect       `json:"geometry"`
	Outer    Rect       `json:"outer"`
	Bounds   Rect       `json:"bounds"`
	Inner    Rect       `json:"inner"`
	Align    [2]float64 `json:"align"`
}

// Result is the computed layout of a document.
type Result struct {
	Source string      `json:"source,omitempty"`
	Boxes  []BoxResult `json:"boxes"`
}

func newRect(r layout.Rect, precision int) Rect {
	return Rect{
		X:      round(r.X, precision),
		Y:      round(r.Y, precision),
		Width:  round(r.Width, precision),
		Height: round(r.Height, precision),
	}
}

func round(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

// Result collects the current node state in document order, rounded to
// precision decimals.
func (t *Tree) Result(source string, precision int) Result {
	res := Result{Source: source, Boxes: make([]BoxResult, 0, len(t.order))}
	for _, n := range t.order {
		m := n.Metrics()
		h, v := n.Align()
		res.Boxes = append(res.Boxes, BoxResult{
			Name:     n.Name(),
			Geometry: newRect(n.Geometry().Rect(), precision),
			Outer:    newRect(m.Outer, precision),
			Bounds:   newRect(m.Bounds, precision),
			Inner:    newRect(m.Inner, precision),
			Align:    [2]float64{round(h, precision), round(v, precision)},
		})
	}
	return res
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}

// WriteText writes results as aligned columns, one table per document.
func WriteText(w io.Writer, results []Result, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	num := func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if res.Source != "" {
			fmt.Fprintf(tw, "# %s\n", res.Source)
		}
		fmt.Fprintln(tw, "NAME\tLEFT\tTOP\tWIDTH\tHEIGHT\tABS X\tABS Y\tALIGN")
		for _, b := range res.Boxes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s,%s\n",
				b.Name,
				num(b.Geometry.X), num(b.Geometry.Y), num(b.Geometry.Width), num(b.Geometry.Height),
				num(b.Outer.X), num(b.Outer.Y),
				num(b.Align[0]), num(b.Align[1]),
			)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
