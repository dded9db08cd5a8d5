// Package output provides machine-readable output of command results
package output

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/fontweak/pkg/errors"
)

// Machine-readable formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes results in one machine-readable format
type Renderer struct {
	output io.Writer
	format string
}

// New creates a renderer for format, which must be FormatJSON or FormatYAML
func New(output io.Writer, format string) (*Renderer, error) {
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported output format %q", format)
	}
	return &Renderer{output: output, format: format}, nil
}

// Format returns the format the renderer writes
func (r *Renderer) Format() string {
	return r.format
}

// RenderResult renders any result type
func (r *Renderer) RenderResult(result interface{}) error {
	if r.format == FormatYAML {
		enc := yaml.NewEncoder(r.output)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(r.output)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// errorObject is the rendered form of an error
type errorObject struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    string                 `json:"code,omitempty" yaml:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// RenderError renders an error, with its code and details when it has them
func (r *Renderer) RenderError(err error) error {
	obj := errorObject{Error: err.Error()}
	var fe *errors.FontweakError
	if stderrors.As(err, &fe) {
		obj.Code = string(fe.Code)
		obj.Details = fe.Details
	}
	return r.RenderResult(obj)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.RenderResult(map[string]string{"message": msg})
}
