// Package boiler adapts sqlboiler-generated models to the jsonapi.Model
// capability surface.
//
// Columns are read through their `boil` struct tags, null.* wrappers and
// types.JSON columns are unwrapped to plain values, and the generated R
// relationship struct is exposed as named relations: a pointer field becomes
// a to-one relation, a slice field a to-many relation. Relation names are
// the camelCased R field names.
//
// Field metadata is built once per model type and cached, so wrapping is
// cheap and safe for concurrent use. Relations resolve lazily on access,
// which keeps cyclic R graphs finite under the mapper's deduplication.
package boiler

import (
	"database/sql/driver"
	"reflect"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/aarondl/strmangle"
	"github.com/goccy/go-json"
	"github.com/spf13/cast"

	"github.com/Station-Manager/jsonapi"
)

type columnInfo struct {
	index  int
	column string
}

type relationInfo struct {
	index int
	name  string
	many  bool
}

type structMetadata struct {
	idIndex   int // index of the "id" column field, -1 when absent
	columns   []columnInfo
	relIndex  int // index of the R struct field, -1 when absent
	relations []relationInfo
}

// Adapter wraps sqlboiler models behind the jsonapi.Model interface.
// The zero value is ready to use; metadata is cached per model type.
type Adapter struct {
	metadataCache sync.Map // map[reflect.Type]*structMetadata
}

// New creates an Adapter.
func New() *Adapter { return &Adapter{} }

// Wrap adapts a single generated model. The input must be a struct or a
// non-nil pointer to one.
func (a *Adapter) Wrap(model any) (jsonapi.Model, error) {
	const op errors.Op = "boiler.Adapter.Wrap"
	val, err := structValue(model)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return &wrapped{adapter: a, val: val, meta: a.getOrBuildMetadata(val.Type())}, nil
}

// WrapSlice adapts a slice of generated models (e.g. a models.UserSlice)
// into an ordered jsonapi.Collection.
func (a *Adapter) WrapSlice(models any) (jsonapi.Collection, error) {
	const op errors.Op = "boiler.Adapter.WrapSlice"
	if models == nil {
		return nil, errors.New(op).Msg(jsonapi.ErrMsgNilModel)
	}
	val := reflect.ValueOf(models)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, errors.New(op).Msg(jsonapi.ErrMsgNilModel)
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice {
		return nil, errors.New(op).Errorf("expected a slice of models, got %T", models)
	}
	coll := make(jsonapi.Collection, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		mod, err := a.Wrap(val.Index(i).Interface())
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		coll = append(coll, mod)
	}
	return coll, nil
}

func structValue(model any) (reflect.Value, error) {
	const op errors.Op = "boiler.structValue"
	if model == nil {
		return reflect.Value{}, errors.New(op).Msg(jsonapi.ErrMsgNilModel)
	}
	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, errors.New(op).Msg(jsonapi.ErrMsgNilModel)
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New(op).Errorf("expected a model struct, got %T", model)
	}
	return val, nil
}

func (a *Adapter) getOrBuildMetadata(typ reflect.Type) *structMetadata {
	if cached, ok := a.metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	meta := &structMetadata{idIndex: -1, relIndex: -1}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if f.Name == "R" {
			meta.relIndex = i
			meta.relations = relationMetadata(f.Type)
			continue
		}
		if f.Name == "L" {
			continue
		}
		column := f.Tag.Get("boil")
		for j := 0; j < len(column); j++ {
			if column[j] == ',' {
				column = column[:j]
				break
			}
		}
		if column == "" || column == "-" {
			continue
		}
		if column == "id" {
			meta.idIndex = i
		}
		meta.columns = append(meta.columns, columnInfo{index: i, column: column})
	}
	actual, _ := a.metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

func relationMetadata(typ reflect.Type) []relationInfo {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}
	rels := make([]relationInfo, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		switch f.Type.Kind() {
		case reflect.Ptr:
			rels = append(rels, relationInfo{index: i, name: strmangle.CamelCase(f.Name)})
		case reflect.Slice:
			rels = append(rels, relationInfo{index: i, name: strmangle.CamelCase(f.Name), many: true})
		}
	}
	return rels
}

// wrapped is a lazy read-only view over one generated model value.
type wrapped struct {
	adapter *Adapter
	val     reflect.Value
	meta    *structMetadata
}

func (w *wrapped) ID() (string, error) {
	const op errors.Op = "boiler.wrapped.ID"
	if w.meta.idIndex < 0 {
		return "", errors.New(op).Msg(jsonapi.ErrMsgMissingID)
	}
	id, err := cast.ToStringE(unwrapValue(w.val.Field(w.meta.idIndex)))
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	if id == "" {
		return "", errors.New(op).Msg(jsonapi.ErrMsgMissingID)
	}
	return id, nil
}

func (w *wrapped) Attributes() map[string]any {
	attrs := make(map[string]any, len(w.meta.columns))
	for _, col := range w.meta.columns {
		attrs[col.column] = unwrapValue(w.val.Field(col.index))
	}
	return jsonapi.FilterAttributes(attrs)
}

func (w *wrapped) Relations() map[string]any {
	if w.meta.relIndex < 0 {
		return nil
	}
	relStruct := w.val.Field(w.meta.relIndex)
	if relStruct.Kind() == reflect.Ptr {
		if relStruct.IsNil() {
			return nil
		}
		relStruct = relStruct.Elem()
	}
	rels := make(map[string]any, len(w.meta.relations))
	for _, rel := range w.meta.relations {
		field := relStruct.Field(rel.index)
		if rel.many {
			if field.IsNil() {
				continue
			}
			coll := make(jsonapi.Collection, 0, field.Len())
			for i := 0; i < field.Len(); i++ {
				mod, err := w.adapter.Wrap(field.Index(i).Interface())
				if err != nil {
					continue
				}
				coll = append(coll, mod)
			}
			rels[rel.name] = coll
			continue
		}
		if field.IsNil() {
			continue
		}
		mod, err := w.adapter.Wrap(field.Interface())
		if err != nil {
			continue
		}
		rels[rel.name] = mod
	}
	if len(rels) == 0 {
		return nil
	}
	return rels
}

// unwrapValue flattens database wrapper types to plain attribute values.
// Invalid null.* values become nil, JSON columns decode into any.
func unwrapValue(v reflect.Value) any {
	if !v.CanInterface() {
		return nil
	}
	switch tv := v.Interface().(type) {
	case null.JSON:
		if !tv.Valid {
			return nil
		}
		return decodeJSON(tv.JSON)
	case boilertypes.JSON:
		if len(tv) == 0 {
			return nil
		}
		return decodeJSON(tv)
	case driver.Valuer:
		out, err := tv.Value()
		if err != nil {
			return nil
		}
		if b, ok := out.([]byte); ok {
			return string(b)
		}
		return out
	default:
		return tv
	}
}

func decodeJSON(raw []byte) any {
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return string(raw)
	}
	return out
}
