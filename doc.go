// Package jsonapi maps ORM-sourced models into JSON:API documents.
//
// The Mapper type turns a Model (or an ordered Collection of them) into a
// document with data, attributes, relationships, included and links sections
// per the JSON:API shape. It is a pure transformation: query execution, HTTP
// transport and request-body parsing are the caller's concern.
//
// Basic Usage
//
//	mapper := jsonapi.New("https://api.example.com")
//	doc, err := mapper.Map(model, "models")
//	body, err := json.Marshal(doc)
//
// # Mapping Rules
//
// Map follows these rules in order:
//  1. A Collection maps to an ordered sequence of resource objects, a Model
//     to a single one; ids are normalized to strings
//  2. The attribute bag is filtered: the id key and any key ending in the
//     literal suffix "_id" or "_type" never appear in attributes
//  3. Each relation becomes a relationships block with resource identifiers
//     and self/related links; the full related resources are side-loaded
//     into included, deduplicated by {type, id} across the whole document
//  4. Top-level self and, when requested, pagination links are generated
//     from the base URL configured at construction
//
// # Source Models
//
// Any type implementing Model can be mapped. NewModel builds one from a raw
// id and attribute bag; package boiler adapts sqlboiler-generated models.
//
//	model := jsonapi.NewModel(5, map[string]any{"name": "A model"}).
//	    SetRelation("related-model", related)
//
// # Relations
//
// Relation values may be a Model, a Collection, or nil. Nil and absent
// relations are skipped, never reported as errors. Passing WithoutRelations
// to Map suppresses the relationships and included sections entirely.
//
// # Pagination
//
// WithPagination(limit, offset, total) adds first/prev/next/last links using
// page[limit]/page[offset] query parameters. The arithmetic is pass-through:
// offsets are not clamped, validation of the inputs is up to the caller.
//
// # Thread Safety
//
// A Mapper holds only its base URL and naming strategy and is safe for
// concurrent use; every Map call builds a fresh document.
package jsonapi
