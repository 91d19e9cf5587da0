// Package retwmodel defines the JSON shape of a RETW extract file: a set
// of logical models (exactly one of them the document model owning this
// file's entities) plus the mappings that transform those entities.
//
// Unknown fields are ignored by encoding/json by default, matching the
// "unknown fields ignored" contract of the input format.
package retwmodel

// File is the top-level shape of one RETW JSON document.
type File struct {
	Models   []Model   `json:"Models"`
	Mappings []Mapping `json:"Mappings"`
}

// DocumentModel returns the unique Model with IsDocumentModel == true, and
// whether one was found. Callers must treat more than zero matches as the
// first one found; a file with none is the MissingDocumentModel case.
func (f File) DocumentModel() (Model, bool) {
	for _, m := range f.Models {
		if m.IsDocumentModel {
			return m, true
		}
	}
	return Model{}, false
}

// Model is one logical data model inside a RETW file.
type Model struct {
	Id              string   `json:"Id"`
	Name            string   `json:"Name"`
	Code            string   `json:"Code"`
	IsDocumentModel bool     `json:"IsDocumentModel"`
	Entities        []Entity `json:"Entities"`
}

// Entity is a table-like data container defined or referenced by a model.
type Entity struct {
	Id               string `json:"Id"`
	Name             string `json:"Name"`
	Code             string `json:"Code"`
	CodeModel        string `json:"CodeModel"`
	Stereotype       string `json:"Stereotype"`
	CreationDate     string `json:"CreationDate"`
	Creator          string `json:"Creator"`
	ModificationDate string `json:"ModificationDate"`
	Modifier         string `json:"Modifier"`
}

// mddeFilterBusinessRule is the stereotype value marking an entity as a
// filter rule rather than a genuine data source.
const mddeFilterBusinessRule = "mdde_FilterBusinessRule"

// IsFilterBusinessRule reports whether e is a filter-rule pseudo-entity
// that must be skipped as a mapping source.
func (e Entity) IsFilterBusinessRule() bool {
	return e.Stereotype == mddeFilterBusinessRule
}

// Mapping is one source(s)->target transformation declared by a file.
type Mapping struct {
	Id                string             `json:"Id"`
	Name              string             `json:"Name"`
	Code              string             `json:"Code"`
	CreationDate      string             `json:"CreationDate"`
	Creator           string             `json:"Creator"`
	ModificationDate  string             `json:"ModificationDate"`
	Modifier          string             `json:"Modifier"`
	DataSource        string             `json:"DataSource"`
	EntityTarget      *Entity            `json:"EntityTarget"`
	SourceComposition []SourceComposition `json:"SourceComposition"`
}

// SourceComposition wraps one source entity reference of a Mapping.
type SourceComposition struct {
	Entity Entity `json:"Entity"`
}
