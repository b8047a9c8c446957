package sequence

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"promissa/pkg/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Field describes one input on a screen.
type Field struct {
	ID       string    `yaml:"id" json:"id"`
	Label    string    `yaml:"label" json:"label"`
	Kind     string    `yaml:"kind" json:"kind"`
	Required bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Options  []string  `yaml:"options,omitempty" json:"options,omitempty"`
	ShowWhen Condition `yaml:"show_when,omitempty" json:"show_when,omitempty"`
}

// Subsection is one screen, or, when OnePerField is set, one screen per
// field, in declaration order.
type Subsection struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Path        string    `yaml:"path"`
	OnePerField bool      `yaml:"one_per_field,omitempty"`
	ShowWhen    Condition `yaml:"show_when,omitempty"`
	Fields      []Field   `yaml:"fields"`
}

// Section groups subsections and may be restricted to one role.
type Section struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Role        domain.Role  `yaml:"role,omitempty"`
	Subsections []Subsection `yaml:"subsections"`
}

// Catalog is the full declarative questionnaire structure.
type Catalog struct {
	Sections []Section `yaml:"sections"`
}

var validOps = map[Op]bool{
	"": true, OpEquals: true, OpNotEquals: true, OpNotEmpty: true,
	OpAnyOf: true, OpIsTrue: true, OpIsFalse: true,
}

var validKinds = map[string]bool{
	"text": true, "date": true, "select": true, "boolean": true,
	"address": true, "timeline": true, "info": true,
}

// Load parses and validates the embedded catalog. Called once at startup;
// a malformed catalog is a build defect, not a runtime condition.
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse decodes a catalog document and validates its structure.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Sections) == 0 {
		return fmt.Errorf("catalog has no sections")
	}

	paths := map[string]bool{}
	fieldIDs := map[string]string{}

	for _, sec := range c.Sections {
		if sec.ID == "" {
			return fmt.Errorf("section with empty id")
		}
		if sec.Role != "" && sec.Role != domain.RoleSponsor && sec.Role != domain.RoleBeneficiary {
			return fmt.Errorf("section %s: invalid role %q", sec.ID, sec.Role)
		}
		for _, sub := range sec.Subsections {
			if sub.Path == "" {
				return fmt.Errorf("section %s subsection %s: empty path", sec.ID, sub.ID)
			}
			if paths[sub.Path] {
				return fmt.Errorf("duplicate screen path %s", sub.Path)
			}
			paths[sub.Path] = true
			if !validOps[sub.ShowWhen.Op] {
				return fmt.Errorf("subsection %s: unknown op %q", sub.ID, sub.ShowWhen.Op)
			}
			if len(sub.Fields) == 0 && sub.ShowWhen.Field == "" {
				return fmt.Errorf("subsection %s: no fields", sub.ID)
			}
			for _, f := range sub.Fields {
				if f.ID == "" {
					return fmt.Errorf("subsection %s: field with empty id", sub.ID)
				}
				if owner, dup := fieldIDs[f.ID]; dup {
					return fmt.Errorf("field %s declared in both %s and %s", f.ID, owner, sub.ID)
				}
				fieldIDs[f.ID] = sub.ID
				if !validKinds[f.Kind] {
					return fmt.Errorf("field %s: unknown kind %q", f.ID, f.Kind)
				}
				if !validOps[f.ShowWhen.Op] {
					return fmt.Errorf("field %s: unknown op %q", f.ID, f.ShowWhen.Op)
				}
			}
		}
	}
	return nil
}

// FieldByID locates a field declaration anywhere in the catalog.
func (c *Catalog) FieldByID(id string) (Field, bool) {
	for _, sec := range c.Sections {
		for _, sub := range sec.Subsections {
			for _, f := range sub.Fields {
				if f.ID == id {
					return f, true
				}
			}
		}
	}
	return Field{}, false
}
