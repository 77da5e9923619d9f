// Package cvfile reads and writes CV documents as JSON or YAML files. Every file is
// checked against the embedded CV schema before it is decoded.
package cvfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/cv.schema.json
var schemaJSON string

var schema = mustLoadSchema()

func mustLoadSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("cvfile: invalid embedded schema: %v", err))
	}
	return s
}

// Format is the encoding of a CV file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf infers the format from the file extension. Unknown extensions are JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the CV file at path.
func Load(path string) (*types.CVDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data, FormatOf(path))
}

// Parse decodes data in the given format. name identifies the source in errors.
// Experience dates come back in canonical "Month Year" form.
func Parse(name string, data []byte, format Format) (*types.CVDocument, error) {
	jsonData := data
	if format == FormatYAML {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &FileError{Path: name, Message: "invalid YAML", Cause: err}
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, &FileError{Path: name, Message: "YAML is not representable as JSON", Cause: err}
		}
		jsonData = converted
	}

	if err := checkSchema(name, jsonData); err != nil {
		return nil, err
	}

	var doc types.CVDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, &FileError{Path: name, Message: "failed to decode document", Cause: err}
	}
	for i := range doc.Experiences {
		doc.Experiences[i].NormalizeDates()
	}
	return &doc, nil
}

func checkSchema(name string, jsonData []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(jsonData))
	if err != nil {
		return &FileError{Path: name, Message: "invalid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Path: name, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return schemaErr
}

// Save writes doc to path in the format implied by its extension.
func Save(path string, doc *types.CVDocument) error {
	data, err := encode(doc, FormatOf(path))
	if err != nil {
		return &FileError{Path: path, Message: "failed to encode document", Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &FileError{Path: path, Message: "failed to create directory", Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &FileError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}

func encode(doc *types.CVDocument, format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(doc)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
