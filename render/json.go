package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/glosa/chapter"
)

// JSONRenderer writes a chapter as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Chapter serializes the chapter as its JSON entry list.
func (r *JSONRenderer) Chapter(ch *chapter.Chapter) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(ch)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
