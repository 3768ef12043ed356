package blob

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Record is the persisted layout of one note.
type Record struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	Title     string    `json:"title" yaml:"title" validate:"required"`
	Content   string    `json:"content" yaml:"content"`
	Tags      []string  `json:"tags" yaml:"tags" validate:"dive,required"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt" validate:"required,gtefield=CreatedAt"`
}

// Codec turns the record list into bytes and back.
type Codec interface {
	// Name identifies the codec in configuration ("json", "yaml").
	Name() string
	// Extension is the file extension conventionally used for the format.
	Extension() string
	Encode(records []Record) ([]byte, error)
	Decode(data []byte) ([]Record, error)
}

// CodecByName returns the codec registered under name.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", name)
	}
}

// --- JSON Codec ---

// JSONCodec stores the collection as a JSON array.
type JSONCodec struct {
	// Indent pretty-prints the output.
	Indent bool
}

func (JSONCodec) Name() string      { return "json" }
func (JSONCodec) Extension() string { return ".json" }

func (c JSONCodec) Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	if c.Indent {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}

func (JSONCodec) Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return records, nil
}

// --- YAML Codec ---

// YAMLCodec stores the collection as a YAML sequence.
type YAMLCodec struct{}

func (YAMLCodec) Name() string      { return "yaml" }
func (YAMLCodec) Extension() string { return ".yaml" }

func (YAMLCodec) Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	return yaml.Marshal(records)
}

func (YAMLCodec) Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return records, nil
}
