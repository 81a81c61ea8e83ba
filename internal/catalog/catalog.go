// Package catalog holds the static destination list behind the mock search endpoint.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed destinations.json
var defaultDestinations []byte

//go:embed schema.json
var schema []byte

// Entry is one searchable destination.
type Entry struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Region  *string `json:"region"`
	IATA    *string `json:"iata"`
}

type Catalog struct {
	entries []Entry
}

// Default returns the embedded catalogue.
func Default() (*Catalog, error) {
	return Parse(defaultDestinations)
}

// Load reads a catalogue file; an empty path yields the embedded one.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates data against the catalogue schema before decoding it.
func Parse(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

// Search returns entries whose name or IATA code contains q verbatim, optionally
// narrowed to countries containing country. Matching ignores case; catalogue order is kept.
func (c *Catalog) Search(q, country string) []Entry {
	q = strings.ToLower(q)
	country = strings.ToLower(strings.TrimSpace(country))
	out := []Entry{}
	for _, e := range c.entries {
		hit := strings.Contains(strings.ToLower(e.Name), q)
		if !hit && e.IATA != nil {
			hit = strings.Contains(strings.ToLower(*e.IATA), q)
		}
		if !hit {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(e.Country), country) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (c *Catalog) Len() int { return len(c.entries) }
