package jsonapi

// Document is the output envelope. Data holds a single *Resource or an
// ordered []*Resource depending on the mapped input.
type Document struct {
	Data     any         `json:"data"`
	Included []*Resource `json:"included,omitempty"`
	Links    Links       `json:"links,omitempty"`
}

// Resource is the {id, type, attributes, relationships, links}
// representation of one entity.
type Resource struct {
	ID            string                   `json:"id"`
	Type          string                   `json:"type"`
	Attributes    map[string]any           `json:"attributes,omitempty"`
	Relationships map[string]*Relationship `json:"relationships,omitempty"`
	Links         Links                    `json:"links,omitempty"`
}

// Identifier is the minimal {id, type} reference used inside relationship
// blocks and as the deduplication key for included resources.
type Identifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Relationship holds a single *Identifier for a to-one relation or an
// ordered []*Identifier for a to-many relation.
type Relationship struct {
	Data  any   `json:"data"`
	Links Links `json:"links,omitempty"`
}

// Links maps link names (self, related, first, prev, next, last) to URLs.
type Links map[string]string
