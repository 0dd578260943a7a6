package jsonapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_PaginationLinks(t *testing.T) {
	mapper := New("https://api.example.com")

	coll := Collection{NewModel(41, map[string]any{"name": "A model"})}

	doc, err := mapper.Map(coll, "models", WithPagination(10, 40, 100))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/models", doc.Links["self"])
	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=0", doc.Links["first"])
	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=30", doc.Links["prev"])
	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=50", doc.Links["next"])
	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=90", doc.Links["last"])
}

func TestMapper_PaginationNoClamping(t *testing.T) {
	mapper := New("https://api.example.com")

	// offset < limit and total < limit: pass-through arithmetic, negative
	// offsets included.
	doc, err := mapper.Map(Collection{}, "models", WithPagination(10, 0, 5))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=-10", doc.Links["prev"])
	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=-5", doc.Links["last"])
	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=10", doc.Links["next"])
	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=0", doc.Links["first"])
}

func TestMapper_NoPaginationWithoutOption(t *testing.T) {
	mapper := New("https://api.example.com")

	doc, err := mapper.Map(Collection{}, "models")
	require.NoError(t, err)

	assert.NotContains(t, doc.Links, "first")
	assert.NotContains(t, doc.Links, "prev")
	assert.NotContains(t, doc.Links, "next")
	assert.NotContains(t, doc.Links, "last")
}

func TestMapper_PaginationOnSingleResource(t *testing.T) {
	mapper := New("https://api.example.com")

	// Pagination is caller-driven; the mapper does not second-guess it even
	// for single-resource documents.
	doc, err := mapper.Map(NewModel(1, nil), "models", WithPagination(10, 0, 100))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/models?page[limit]=10&page[offset]=90", doc.Links["last"])
}
