package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	description := "Writes in blue"
	price := decimal.NewFromFloat(1.50)

	cmd, err := commands.NewCreateItemCommand(id, "Pen", price, &description, 100)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, "Pen", cmd.Name())
	assert.True(t, price.Equal(cmd.Price()))
	require.NotNil(t, cmd.Description())
	assert.Equal(t, description, *cmd.Description())
	assert.Equal(t, 100, cmd.Stock())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateItemCommand_InvalidItemID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateItemCommand(invalidID, "Pen", decimal.NewFromInt(1), nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateItemCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateItemCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateItemCommandIsNotConstructed)
}
