package product

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/domain/shared"
)

func TestFactory_Create(t *testing.T) {
	p, err := NewFactory().Create(Command{
		Name:        "Pain au chocolat",
		Description: "Viennoiserie",
		Price:       decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), p.ID())
	assert.Equal(t, "Pain au chocolat", p.Name())
	assert.True(t, p.Price().Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, StatusActive, p.Status())
	assert.True(t, p.IsActive())
}

func TestFactory_CreateRejectsInvalidCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"missing name", Command{Price: decimal.NewFromInt(1)}},
		{"negative price", Command{Name: "Baguette", Price: decimal.NewFromInt(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFactory().Create(tt.cmd)
			assert.True(t, errors.Is(err, ErrInvalidProduct))
			assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		})
	}
}

func TestProduct_CopyThenMutate(t *testing.T) {
	original := RebuildFromDTO(ReconstructionDTO{
		ID: 7, Name: "Croissant", Price: decimal.NewFromInt(2), Status: StatusActive,
	})

	archived := original.Copy()
	archived.Archive()
	assert.Equal(t, StatusActive, original.Status())
	assert.Equal(t, StatusArchived, archived.Status())

	updated := original.Copy()
	require.NoError(t, updated.UpdateWith(Command{Name: "Croissant au beurre", Price: decimal.NewFromInt(3)}))
	assert.Equal(t, "Croissant", original.Name())
	assert.Equal(t, "Croissant au beurre", updated.Name())
	assert.Equal(t, int64(7), updated.ID())

	assert.Error(t, updated.Copy().UpdateWith(Command{}))
}

func TestProduct_Snapshot(t *testing.T) {
	p := RebuildFromDTO(ReconstructionDTO{
		ID: 3, Name: "Baguette", Description: "Tradition", Price: decimal.RequireFromString("1.25"),
	})

	s := p.Snapshot()
	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, "Baguette", s.Name)
	assert.Equal(t, "Tradition", s.Description)
	assert.Equal(t, "1.25", s.Price.StringFixed(2))

	assert.Equal(t, int64(9), p.WithID(9).ID())
	assert.Equal(t, int64(3), p.ID())
}
