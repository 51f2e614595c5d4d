package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/chronos/pkg/core"
)

// Serializer defines how to read and write the note mapping in a specific
// file format.
type Serializer interface {
	// Decode reads a full mapping from r.
	Decode(r io.Reader) (core.Notes, error)
	// Encode converts the mapping to bytes.
	Encode(notes core.Notes) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json":  NewJSONSerializer(),
		".jsonc": &JSONSerializer{Indent: "  ", Comments: true},
		".yaml":  NewYAMLSerializer(),
		".yml":   NewYAMLSerializer(),
	}
}

// serializerFor picks the serializer registered for the extension of path,
// falling back to JSON.
func serializerFor(path string, serializers map[string]Serializer) Serializer {
	ext := strings.ToLower(filepath.Ext(path))
	if s, ok := serializers[ext]; ok {
		return s
	}
	if s, ok := serializers[".json"]; ok {
		return s
	}
	return NewJSONSerializer()
}

// wireNote mirrors core.Note with pointer fields so missing keys can be told
// apart from zero values. Both fields are required.
type wireNote struct {
	Content  *string `json:"content" yaml:"content"`
	IsLocked *bool   `json:"is_locked" yaml:"is_locked"`
}

func fromWire(payload map[string]wireNote) (core.Notes, error) {
	notes := make(core.Notes, len(payload))
	for key, w := range payload {
		if w.Content == nil {
			return nil, fmt.Errorf("note %q: missing field content", key)
		}
		if w.IsLocked == nil {
			return nil, fmt.Errorf("note %q: missing field is_locked", key)
		}
		notes[key] = core.Note{Content: *w.Content, IsLocked: *w.IsLocked}
	}
	return notes, nil
}

// --- JSON Serializer ---

// JSONSerializer reads and writes pretty-printed JSON objects.
type JSONSerializer struct {
	Indent string
	// Comments accepts // and /* */ comments and trailing commas when
	// decoding. Encoded output is always plain JSON.
	Comments bool
}

// NewJSONSerializer creates a JSON serializer with two-space indentation.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "  "}
}

func (s *JSONSerializer) Decode(r io.Reader) (core.Notes, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if s.Comments {
		data = jsonc.ToJSON(data)
	}

	var payload map[string]wireNote
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if payload == nil {
		return nil, errors.New("invalid json: top-level value is not an object")
	}
	return fromWire(payload)
}

func (s *JSONSerializer) Encode(notes core.Notes) ([]byte, error) {
	if notes == nil {
		notes = core.Notes{}
	}
	return json.MarshalIndent(notes, "", s.Indent)
}

// --- YAML Serializer ---

// YAMLSerializer reads and writes YAML mappings with the same shape as the
// JSON file.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Decode(r io.Reader) (core.Notes, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var payload map[string]wireNote
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if payload == nil {
		return nil, errors.New("invalid yaml: document is not a mapping")
	}
	return fromWire(payload)
}

func (s *YAMLSerializer) Encode(notes core.Notes) ([]byte, error) {
	if notes == nil {
		notes = core.Notes{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(notes); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
