package jsonapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]any
		want  map[string]any
	}{
		{
			name:  "id key removed",
			attrs: map[string]any{"id": 5, "name": "A model"},
			want:  map[string]any{"name": "A model"},
		},
		{
			name:  "foreign key suffix removed",
			attrs: map[string]any{"author_id": 10, "title": "A post"},
			want:  map[string]any{"title": "A post"},
		},
		{
			name:  "polymorphic type suffix removed",
			attrs: map[string]any{"commentable_type": "Post", "body": "hi"},
			want:  map[string]any{"body": "hi"},
		},
		{
			name:  "suffix match is case-sensitive",
			attrs: map[string]any{"AUTHOR_ID": 10, "Some_Type": "x", "name": "kept"},
			want:  map[string]any{"AUTHOR_ID": 10, "Some_Type": "x", "name": "kept"},
		},
		{
			name:  "suffix must be at the end",
			attrs: map[string]any{"identity": "kept", "typewriter": "kept"},
			want:  map[string]any{"identity": "kept", "typewriter": "kept"},
		},
		{
			name:  "bare suffixes removed",
			attrs: map[string]any{"_id": 1, "_type": "x", "name": "kept"},
			want:  map[string]any{"name": "kept"},
		},
		{
			name:  "all keys filtered yields nil",
			attrs: map[string]any{"id": 1, "parent_id": 2},
			want:  nil,
		},
		{
			name:  "nil bag",
			attrs: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterAttributes(tt.attrs))
		})
	}
}

func TestFilterAttributes_DoesNotMutateInput(t *testing.T) {
	attrs := map[string]any{"id": 5, "name": "A model"}

	_ = FilterAttributes(attrs)

	assert.Equal(t, map[string]any{"id": 5, "name": "A model"}, attrs)
}

func TestMapModel_ID(t *testing.T) {
	tests := []struct {
		name    string
		id      any
		want    string
		wantErr bool
	}{
		{
			name: "string",
			id:   "5",
			want: "5",
		},
		{
			name: "int",
			id:   5,
			want: "5",
		},
		{
			name: "uint64",
			id:   uint64(18446744073709551615),
			want: "18446744073709551615",
		},
		{
			name:    "nil",
			id:      nil,
			wantErr: true,
		},
		{
			name:    "empty",
			id:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewModel(tt.id, nil).ID()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestMapModel_Relations(t *testing.T) {
	related := NewModel(10, nil)

	model := NewModel(5, nil)
	assert.Nil(t, model.Relations())

	model.SetRelation("related-model", related)
	rels := model.Relations()
	require.Len(t, rels, 1)
	assert.Same(t, related, rels["related-model"])
}
