package jsonapi

import (
	"reflect"
	"sort"

	"github.com/Station-Manager/errors"
)

// Options configure a Mapper at construction time.
type Options struct {
	Namer TypeNamer // relation name -> related resource type, defaults to KebabPlural
}

type Option func(*Options)

// WithTypeNamer installs a custom relation-name-to-type convention.
func WithTypeNamer(n TypeNamer) Option { return func(o *Options) { o.Namer = n } }

// Pagination describes the window of a collection response. Its presence on
// a Map call triggers first/prev/next/last links. The offset arithmetic is
// pass-through: out-of-range values are emitted as-is, validation of the
// inputs is the caller's responsibility.
type Pagination struct {
	Limit  int
	Offset int
	Total  int
}

// MapOptions configure a single Map call.
type MapOptions struct {
	Relations  bool // include relationships and included sections, default true
	Pagination *Pagination
}

type MapOption func(*MapOptions)

// WithoutRelations suppresses the relationships and included sections.
func WithoutRelations() MapOption { return func(o *MapOptions) { o.Relations = false } }

// WithPagination adds pagination links to the top-level links section.
func WithPagination(limit, offset, total int) MapOption {
	return func(o *MapOptions) {
		o.Pagination = &Pagination{Limit: limit, Offset: offset, Total: total}
	}
}

// Mapper builds JSON:API documents rooted at a fixed base URL.
// See package documentation for usage and mapping rules.
type Mapper struct {
	links linkBuilder
	namer TypeNamer
}

// New creates a Mapper rooted at baseURL with the provided options.
func New(baseURL string, opts ...Option) *Mapper {
	o := Options{Namer: KebabPlural}
	for _, f := range opts {
		f(&o)
	}
	return &Mapper{links: linkBuilder{base: baseURL}, namer: o.Namer}
}

// Map transforms a Model or Collection into a JSON:API document. A
// Collection maps to an ordered sequence of resource objects, anything
// implementing Model to a single one.
func (m *Mapper) Map(input any, resourceType string, opts ...MapOption) (*Document, error) {
	const op errors.Op = "jsonapi.Mapper.Map"
	if resourceType == "" {
		return nil, errors.New(op).Msg(ErrMsgEmptyResourceType)
	}
	o := MapOptions{Relations: true}
	for _, f := range opts {
		f(&o)
	}

	var coll Collection
	single := false
	switch v := input.(type) {
	case nil:
		return nil, errors.New(op).Msg(ErrMsgNilModel)
	case Collection:
		coll = v
	case []Model:
		coll = v
	case Model:
		coll = Collection{v}
		single = true
	default:
		return nil, errors.New(op).Errorf("Unsupported input %T, want Model or Collection", input)
	}

	st := &docState{
		m:         m,
		relations: o.Relations,
		seen:      make(map[Identifier]bool, len(coll)),
	}

	// Resolve ids up front: primary data must never reappear in included,
	// and a primary model without an id is a hard error.
	ids := make([]string, len(coll))
	for i, mod := range coll {
		if isNilModel(mod) {
			return nil, errors.New(op).Msg(ErrMsgNilModel)
		}
		id, err := mod.ID()
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		ids[i] = id
		st.seen[Identifier{ID: id, Type: resourceType}] = true
	}

	resources := make([]*Resource, len(coll))
	for i, mod := range coll {
		resources[i] = st.resource(mod, resourceType, ids[i])
	}

	doc := &Document{Links: Links{"self": m.links.collection(resourceType)}}
	if single {
		doc.Data = resources[0]
	} else {
		doc.Data = resources
	}
	if len(st.included) > 0 {
		doc.Included = st.included
	}
	if p := o.Pagination; p != nil {
		doc.Links["first"] = m.links.page(resourceType, p.Limit, 0)
		doc.Links["prev"] = m.links.page(resourceType, p.Limit, p.Offset-p.Limit)
		doc.Links["next"] = m.links.page(resourceType, p.Limit, p.Offset+p.Limit)
		doc.Links["last"] = m.links.page(resourceType, p.Limit, p.Total-p.Limit)
	}
	return doc, nil
}

// isNilModel reports whether mod is nil, including a typed-nil pointer
// stored in the interface. A nil pointer is how an absent relation is
// represented, so it must never reach a method receiver.
func isNilModel(mod Model) bool {
	if mod == nil {
		return true
	}
	v := reflect.ValueOf(mod)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// docState carries the per-call included sequence and its deduplication set.
type docState struct {
	m         *Mapper
	relations bool
	seen      map[Identifier]bool
	included  []*Resource
}

func (s *docState) resource(mod Model, resourceType, id string) *Resource {
	res := &Resource{
		ID:         id,
		Type:       resourceType,
		Attributes: mod.Attributes(),
		Links:      Links{"self": s.m.links.resource(resourceType, id)},
	}
	if s.relations {
		s.relationships(res, mod)
	}
	return res
}

func (s *docState) relationships(res *Resource, mod Model) {
	rels := mod.Relations()
	if len(rels) == 0 {
		return
	}
	// Sorted walk keeps the included sequence stable across calls.
	names := make([]string, 0, len(rels))
	for name := range rels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := rels[name]
		if value == nil {
			continue
		}
		relType := s.m.namer(name)
		var data any
		switch v := value.(type) {
		case Collection:
			data = s.identifiers(v, relType)
		case []Model:
			data = s.identifiers(v, relType)
		case Model:
			ident := s.identifier(v, relType)
			if ident == nil {
				continue
			}
			data = ident
		default:
			// Unresolvable relation values are omitted, not reported.
			continue
		}
		if res.Relationships == nil {
			res.Relationships = make(map[string]*Relationship, len(names))
		}
		res.Relationships[name] = &Relationship{
			Data: data,
			Links: Links{
				"self":    s.m.links.relationship(res.Type, res.ID, name),
				"related": s.m.links.related(res.Type, res.ID, name),
			},
		}
	}
}

func (s *docState) identifiers(coll Collection, relType string) []*Identifier {
	idents := make([]*Identifier, 0, len(coll))
	for _, mod := range coll {
		if ident := s.identifier(mod, relType); ident != nil {
			idents = append(idents, ident)
		}
	}
	return idents
}

// identifier resolves a related model to its {type, id} pair and side-loads
// the full resource. Related models without a resolvable id are skipped.
func (s *docState) identifier(mod Model, relType string) *Identifier {
	if isNilModel(mod) {
		return nil
	}
	id, err := mod.ID()
	if err != nil {
		return nil
	}
	ident := &Identifier{ID: id, Type: relType}
	s.include(mod, *ident)
	return ident
}

// include appends the full resource for ident once per document, then walks
// its relations in turn. The seen set doubles as the recursion guard, so
// cyclic model graphs terminate.
func (s *docState) include(mod Model, ident Identifier) {
	if s.seen[ident] {
		return
	}
	s.seen[ident] = true
	res := &Resource{
		ID:         ident.ID,
		Type:       ident.Type,
		Attributes: mod.Attributes(),
		Links:      Links{"self": s.m.links.resource(ident.Type, ident.ID)},
	}
	s.included = append(s.included, res)
	s.relationships(res, mod)
}
