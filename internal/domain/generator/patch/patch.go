// Package patch parses partial updates to the generator configuration.
package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kailas-cloud/indexgen/internal/domain"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
)

// Field names accepted in a patch document.
const (
	FieldServiceURL     = "serviceUrl"
	FieldCollectionName = "collectionName"
	FieldEmbeddingModel = "embeddingModel"
	FieldDistance       = "distanceMetric"
	FieldChunkSize      = "chunkSize"
	FieldAPIKey         = "apiKey"
)

// patchSchema rejects unknown keys and non-scalar values. Numeric strings are
// allowed for chunkSize and coerced afterwards.
const patchSchema = `{
  "type": "object",
  "additionalProperties": false,
  "minProperties": 1,
  "properties": {
    "serviceUrl":     {"type": "string"},
    "collectionName": {"type": "string"},
    "embeddingModel": {"type": "string"},
    "distanceMetric": {"type": "string"},
    "chunkSize":      {"type": ["integer", "string"]},
    "apiKey":         {"type": "string"}
  }
}`

var schema = mustCompile(patchSchema)

func mustCompile(s string) *gojsonschema.Schema {
	sch, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic("patch: compile schema: " + err.Error())
	}
	return sch
}

// Patch is a partial configuration update. Nil fields are unchanged.
type Patch struct {
	serviceURL     *string
	collectionName *string
	embeddingModel *string
	distance       *generator.Distance
	chunkSize      *int
	apiKey         *string
}

// Parse validates a JSON patch document and coerces its values.
// All errors wrap domain.ErrInvalidPatch.
func Parse(raw []byte) (Patch, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Patch{}, fmt.Errorf("%w: empty body", domain.ErrInvalidPatch)
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Patch{}, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return Patch{}, fmt.Errorf("%w: %s", domain.ErrInvalidPatch, strings.Join(msgs, "; "))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Patch{}, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
	}

	var p Patch
	for key, val := range fields {
		switch key {
		case FieldServiceURL:
			p.serviceURL, err = decodeString(val)
		case FieldCollectionName:
			p.collectionName, err = decodeString(val)
		case FieldEmbeddingModel:
			p.embeddingModel, err = decodeString(val)
		case FieldAPIKey:
			p.apiKey, err = decodeString(val)
		case FieldDistance:
			var s *string
			if s, err = decodeString(val); err == nil {
				var d generator.Distance
				if d, err = generator.ParseDistance(*s); err == nil {
					p.distance = &d
				}
			}
		case FieldChunkSize:
			var n int
			if n, err = coerceInt(val); err == nil {
				if n <= 0 {
					err = fmt.Errorf("must be positive, got %d", n)
				} else {
					p.chunkSize = &n
				}
			}
		}
		if err != nil {
			return Patch{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPatch, key, err)
		}
	}
	return p, nil
}

// Apply returns cfg with the patch applied. cfg itself is not modified.
func (p Patch) Apply(cfg generator.Config) generator.Config {
	if p.serviceURL != nil {
		cfg = cfg.WithServiceURL(*p.serviceURL)
	}
	if p.collectionName != nil {
		cfg = cfg.WithCollectionName(*p.collectionName)
	}
	if p.embeddingModel != nil {
		cfg = cfg.WithEmbeddingModel(*p.embeddingModel)
	}
	if p.apiKey != nil {
		cfg = cfg.WithAPIKey(*p.apiKey)
	}
	if p.distance != nil {
		// validated in Parse
		cfg, _ = cfg.WithDistance(*p.distance)
	}
	if p.chunkSize != nil {
		cfg, _ = cfg.WithChunkSize(*p.chunkSize)
	}
	return cfg
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.serviceURL == nil && p.collectionName == nil && p.embeddingModel == nil &&
		p.distance == nil && p.chunkSize == nil && p.apiKey == nil
}

func decodeString(raw json.RawMessage) (*string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("expected string")
	}
	return &s, nil
}

// coerceInt accepts a JSON integer or a string holding one.
func coerceInt(raw json.RawMessage) (int, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", s)
		}
		return n, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("expected integer")
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("expected integer, got %v", f)
	}
	return int(f), nil
}
