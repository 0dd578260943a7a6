package jsonapi

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/spf13/cast"
)

// Model is the capability surface the mapper requires from a source model.
// It is a read-only view: implementations must not mutate the underlying
// object. One concrete adapter exists per supported source (NewModel for raw
// attribute bags, package boiler for sqlboiler models).
type Model interface {
	// ID returns the model id normalized to a string. It fails when the
	// source object carries no resolvable id.
	ID() (string, error)
	// Attributes returns the filtered attribute bag. The id key and any
	// key ending in the literal suffix "_id" or "_type" must be absent.
	Attributes() map[string]any
	// Relations maps relation names to a Model, a Collection, or nil.
	Relations() map[string]any
}

// Collection is an ordered sequence of models. Order is semantically
// meaningful and preserved in the mapped document.
type Collection []Model

// FilterAttributes returns a copy of the bag without the id key and without
// any key carrying the literal case-sensitive suffix "_id" or "_type".
// Those keys are foreign-key and polymorphic-type plumbing, not domain data.
func FilterAttributes(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if k == "id" || strings.HasSuffix(k, "_id") || strings.HasSuffix(k, "_type") {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// MapModel adapts a raw id, attribute bag and relation set to the Model
// interface. The zero value is not usable; construct with NewModel.
type MapModel struct {
	id    any
	attrs map[string]any
	rels  map[string]any
}

// NewModel creates a MapModel from a raw id and attribute bag. The id may be
// a string or any numeric type; it is normalized to a string on ID().
func NewModel(id any, attrs map[string]any) *MapModel {
	return &MapModel{id: id, attrs: attrs}
}

// SetRelation registers a named relation. The value must be a Model, a
// Collection (or []Model), or nil; nil relations are skipped during mapping.
func (m *MapModel) SetRelation(name string, value any) *MapModel {
	if m.rels == nil {
		m.rels = make(map[string]any)
	}
	m.rels[name] = value
	return m
}

func (m *MapModel) ID() (string, error) {
	const op errors.Op = "jsonapi.MapModel.ID"
	if m.id == nil {
		return "", errors.New(op).Msg(ErrMsgMissingID)
	}
	id, err := cast.ToStringE(m.id)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	if id == "" {
		return "", errors.New(op).Msg(ErrMsgMissingID)
	}
	return id, nil
}

func (m *MapModel) Attributes() map[string]any { return FilterAttributes(m.attrs) }

func (m *MapModel) Relations() map[string]any { return m.rels }
