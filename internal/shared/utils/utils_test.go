package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string `db:"id"`
	Name  string `db:"name,omitempty"`
	Order int    `db:"display_order"`
	Skip  string `db:"-"`
}

func TestStructArgsByTag(t *testing.T) {
	args, err := StructArgsByTag(&row{ID: "a", Name: "n", Order: 3}, "db", "display_order", "id", "name")
	require.NoError(t, err)
	assert.Equal(t, []any{3, "a", "n"}, args)

	_, err = StructArgsByTag(row{}, "db", "missing")
	assert.Error(t, err)

	_, err = StructArgsByTag(42, "db", "id")
	assert.Error(t, err)
}

func TestNullableUUID(t *testing.T) {
	assert.Nil(t, NullableUUID(""))
	assert.Nil(t, NullableUUID("not-a-uuid"))

	id := uuid.New()
	got := NullableUUID(id.String())
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
}
