package sourcemap

import (
	"encoding/json"
	"strings"
)

// SourceMap is a standard source-map v3 container. It serializes to the
// JSON format understood by browsers and debuggers.
type SourceMap struct {
	Version  int      `json:"version"`
	File     string   `json:"file"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

// JSON returns the canonical JSON form of the map.
func (m *SourceMap) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// generator accumulates VLQ-encoded mapping segments while the fragment
// tree is walked in emission order. All segment fields are delta-encoded
// against the previous segment; the generated column additionally resets
// at every generated newline.
type generator struct {
	file    string
	sources []string
	srcIdx  map[string]int

	mappings strings.Builder
	lineHas  bool // whether the current generated line has a segment yet

	genCol int // current generated column (0-indexed)

	prevGenCol  int
	prevSrcIdx  int
	prevSrcLine int
	prevSrcCol  int
}

func newGenerator(file string) *generator {
	return &generator{
		file:   file,
		srcIdx: map[string]int{},
	}
}

// sourceIndex interns a source file path, keeping first-seen order.
func (g *generator) sourceIndex(file string) int {
	if idx, ok := g.srcIdx[file]; ok {
		return idx
	}
	idx := len(g.sources)
	g.sources = append(g.sources, file)
	g.srcIdx[file] = idx
	return idx
}

// addMapping records that the current generated position originates from
// the given source position (both 0-indexed).
func (g *generator) addMapping(file string, srcLine, srcCol int) {
	if g.lineHas {
		g.mappings.WriteByte(',')
	}
	g.lineHas = true

	idx := g.sourceIndex(file)
	g.mappings.WriteString(encodeVLQ(g.genCol - g.prevGenCol))
	g.mappings.WriteString(encodeVLQ(idx - g.prevSrcIdx))
	g.mappings.WriteString(encodeVLQ(srcLine - g.prevSrcLine))
	g.mappings.WriteString(encodeVLQ(srcCol - g.prevSrcCol))

	g.prevGenCol = g.genCol
	g.prevSrcIdx = idx
	g.prevSrcLine = srcLine
	g.prevSrcCol = srcCol
}

// advance moves the generated position past the given text. The text
// contains at most one newline, at its end.
func (g *generator) advance(text string) {
	if strings.HasSuffix(text, "\n") {
		g.mappings.WriteByte(';')
		g.lineHas = false
		g.genCol = 0
		g.prevGenCol = 0
		return
	}
	g.genCol += len(text)
}

// finish materializes the accumulated state into a SourceMap.
func (g *generator) finish() *SourceMap {
	sources := g.sources
	if sources == nil {
		sources = []string{}
	}
	return &SourceMap{
		Version:  3,
		File:     g.file,
		Sources:  sources,
		Names:    []string{},
		Mappings: g.mappings.String(),
	}
}
