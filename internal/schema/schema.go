// Package schema holds the shared document-form contract: the static catalog
// of document templates with their field specs, the step-grouping heuristic
// that paginates a template's fields into wizard steps, and the per-step
// validation rules. Server handlers and the Go SDK both build on this package
// so a client-rendered step always matches what the server expects.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Field types supported by the catalog
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldDate     = "date"
	FieldNumber   = "number"
	FieldEmail    = "email"
	FieldCheckbox = "checkbox"
)

// Option is one choice of a select field
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec declaratively describes one input field of a document form
type FieldSpec struct {
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	Type         string   `json:"type"`
	Required     bool     `json:"required"`
	Options      []Option `json:"options,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Tooltip      string   `json:"tooltip,omitempty"`
}

// Template is a named document type with a fixed field schema and the
// endpoint its form submits to
type Template struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	APIEndpoint string      `json:"apiEndpoint"`
	Fields      []FieldSpec `json:"fields"`
}

// Category groups related templates in the catalog
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Templates   []Template `json:"templates"`
}

// Catalog is the full documentCategories structure bundled with the binary
type Catalog struct {
	Categories []Category `json:"documentCategories"`
}

//go:embed catalog.json
var catalogJSON []byte

var validFieldTypes = map[string]bool{
	FieldText:     true,
	FieldTextarea: true,
	FieldSelect:   true,
	FieldDate:     true,
	FieldNumber:   true,
	FieldEmail:    true,
	FieldCheckbox: true,
}

// LoadCatalog decodes and validates the bundled catalog. It is called once
// at startup; the returned catalog is immutable from then on.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("failed to decode document catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	seenTemplates := make(map[string]bool)

	for _, cat := range c.Categories {
		for _, tpl := range cat.Templates {
			if seenTemplates[tpl.ID] {
				return fmt.Errorf("duplicate template id %q in catalog", tpl.ID)
			}
			seenTemplates[tpl.ID] = true

			seenFields := make(map[string]bool)
			for _, f := range tpl.Fields {
				if seenFields[f.Name] {
					return fmt.Errorf("template %q: duplicate field name %q", tpl.ID, f.Name)
				}
				seenFields[f.Name] = true

				if !validFieldTypes[f.Type] {
					return fmt.Errorf("template %q: field %q has unknown type %q", tpl.ID, f.Name, f.Type)
				}
				if f.Type == FieldSelect && len(f.Options) == 0 {
					return fmt.Errorf("template %q: select field %q has no options", tpl.ID, f.Name)
				}
			}
		}
	}

	return nil
}

// TemplateByID looks up a template anywhere in the catalog
func (c *Catalog) TemplateByID(id string) *Template {
	for _, cat := range c.Categories {
		for i := range cat.Templates {
			if cat.Templates[i].ID == id {
				return &cat.Templates[i]
			}
		}
	}
	return nil
}

// FieldByName looks up a field spec on the template
func (t *Template) FieldByName(name string) *FieldSpec {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}
	return nil
}
