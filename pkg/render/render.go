// Package render formats the YAML-ish header and per-layout records
// spec.md §6 defines, and writes them to an io.Writer.
package render

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crossplay/crossgen/pkg/cellgrid"
	"github.com/crossplay/crossgen/pkg/crossword"
	"github.com/crossplay/crossgen/pkg/layout"
)

// Header is the run's word list and parameters, rendered once at the
// top of the stream.
type Header struct {
	WordList []string `yaml:"word_list"`
	NumAreas int      `yaml:"num_areas"`
	Seed     uint64   `yaml:"seed"`
}

// WriteHeader marshals h as YAML and writes it to w.
func WriteHeader(w io.Writer, words []string, numAreas int, seed uint64) error {
	data, err := yaml.Marshal(Header{WordList: words, NumAreas: numAreas, Seed: seed})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteLayout renders one completed crossword's record: its placement
// list, dimensions, and both grid orientations.
func WriteLayout(w io.Writer, cw crossword.Crossword) error {
	var b strings.Builder

	b.WriteByte('[')
	first := true
	for _, p := range cw.Placements {
		if p == nil {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
		first = false
	}
	b.WriteString("]:\n")

	box := cw.BoundingBox()
	actualW, actualH := box.Width(), box.Height()
	width, height := actualW, actualH
	if width > height {
		width, height = height, width
	}

	fmt.Fprintf(&b, "  width: %d\n  height: %d\n  area: %d\n  overlaps: %d\n",
		width, height, actualW*actualH, cw.Overlaps)

	native := renderRows(cw.Grid, box)
	rotated := transpose(native)
	portrait, landscape := native, rotated
	if actualW > actualH {
		portrait, landscape = rotated, native
	}

	b.WriteString("  portrait: |\n")
	writeRows(&b, portrait)
	b.WriteString("  landscape: |\n")
	writeRows(&b, landscape)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRows(b *strings.Builder, rows [][]rune) {
	for _, row := range rows {
		b.WriteString("    ")
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
}

// renderRows reads the tight letter box of g, using a letter's
// character where one is written and a single space for blocks and
// empties.
func renderRows(g *cellgrid.Grid, box layout.BoundingBox) [][]rune {
	rows := make([][]rune, box.Height())
	for ri, row := 0, box.Top; row <= box.Bottom; ri, row = ri+1, row+1 {
		line := make([]rune, box.Width())
		for ci, col := 0, box.Left; col <= box.Right; ci, col = ci+1, col+1 {
			cell := g.At(row, col)
			if cell.Kind == cellgrid.Letter {
				line[ci] = cell.Char
			} else {
				line[ci] = ' '
			}
		}
		rows[ri] = line
	}
	return rows
}

func transpose(rows [][]rune) [][]rune {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	out := make([][]rune, width)
	for c := 0; c < width; c++ {
		col := make([]rune, len(rows))
		for r := range rows {
			col[r] = rows[r][c]
		}
		out[c] = col
	}
	return out
}
