package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Renderer writes a report to an output, keeping the order of its lines
type Renderer interface {
	Render(w io.Writer, r Report) error
}

// Output formats understood by NewRenderer
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported output format
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// NewRenderer returns the renderer for the named format
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return Text{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatYAML:
		return YAML{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q, expected one of %v", format, Formats)
}

// Text writes one `description: value` line for each line of the report
type Text struct{}

func (Text) Render(w io.Writer, r Report) error {
	for _, line := range r {
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the report as an array of description and value objects
type JSON struct{}

func (JSON) Render(w io.Writer, r Report) error {
	if r == nil {
		r = Report{}
	}
	encoder := json.NewEncoder(w)
	// Generic types such as `List<String>` should stay readable
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// YAML writes the report as a sequence of description and value mappings
type YAML struct{}

func (YAML) Render(w io.Writer, r Report) error {
	if r == nil {
		r = Report{}
	}
	out, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
