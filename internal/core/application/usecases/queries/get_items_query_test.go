package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetItemsQuery_Valid(t *testing.T) {
	query := queries.NewGetItemsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetItemsQueryIsNotConstructed)
}
