// Package content holds the decision cards and site copy shown around the
// quiz. The document ships embedded and can be overridden from a file.
package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

//go:embed schema.json
var schemaDocument []byte

const schemaURL = "schema://readychina/content.json"

// Placeholder is shown for every detail field of a card without details.
const Placeholder = "Content loading..."

// Site is the fixed copy around the counter and card grid.
type Site struct {
	Name           string `yaml:"name"`
	Headline       string `yaml:"headline"`
	CounterCaption string `yaml:"counter_caption"`
	CTAJoin        string `yaml:"cta_join"`
	CTAJoinHover   string `yaml:"cta_join_hover"`
	CTACancel      string `yaml:"cta_cancel"`
	CTAShare       string `yaml:"cta_share"`
	CardsTitle     string `yaml:"cards_title"`
	Footer         string `yaml:"footer"`
}

// Detail is the China vs. US comparison behind a card.
type Detail struct {
	ChinaSide string `yaml:"china_side"`
	USSide    string `yaml:"us_side"`
	Hook      string `yaml:"hook"`
}

// DecisionCard is one tile in the "convince me" grid.
type DecisionCard struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	ImageURL    string  `yaml:"image_url"`
	Detail      *Detail `yaml:"detail,omitempty"`
}

type document struct {
	Site  Site           `yaml:"site"`
	Cards []DecisionCard `yaml:"cards"`
}

// Catalog is a validated content document. It is read-only after load.
type Catalog struct {
	site  Site
	cards []DecisionCard
	byID  map[string]int
}

// Load parses the embedded document.
func Load() (*Catalog, error) {
	return Parse(defaultDocument)
}

// LoadFile parses a document from disk. An empty path loads the embedded one.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse validates raw YAML against the content schema and builds a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse content yaml: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	cat := &Catalog{
		site:  doc.Site,
		cards: doc.Cards,
		byID:  make(map[string]int, len(doc.Cards)),
	}
	for i, c := range doc.Cards {
		if _, dup := cat.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %q", c.ID)
		}
		cat.byID[c.ID] = i
	}
	return cat, nil
}

// Site returns the page copy.
func (c *Catalog) Site() Site {
	return c.site
}

// Cards returns the cards in display order.
func (c *Catalog) Cards() []DecisionCard {
	out := make([]DecisionCard, len(c.cards))
	copy(out, c.cards)
	return out
}

// Card looks up a card by ID.
func (c *Catalog) Card(id string) (DecisionCard, bool) {
	i, ok := c.byID[id]
	if !ok {
		return DecisionCard{}, false
	}
	return c.cards[i], true
}

// Detail returns the comparison for a card, or placeholders when the card
// is unknown or has none.
func (c *Catalog) Detail(id string) Detail {
	card, ok := c.Card(id)
	if !ok || card.Detail == nil {
		return Detail{ChinaSide: Placeholder, USSide: Placeholder, Hook: Placeholder}
	}
	return *card.Detail
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func contentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaDocument))
		if err != nil {
			compileErr = fmt.Errorf("parse content schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks a decoded YAML value against the schema. The value is
// round-tripped through JSON so the validator sees plain JSON types.
func validate(raw any) error {
	schema, err := contentSchema()
	if err != nil {
		return err
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("parse content json: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("content schema validation failed: %w", err)
	}
	return nil
}
