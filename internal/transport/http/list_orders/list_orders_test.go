package listorders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/settlement/internal/service/models/apperr"
	"github.com/hotelops/settlement/internal/service/models/order"
)

func TestToModelOrdering(t *testing.T) {
	query := &queryOrdersRequest{Ordering: "-total"}

	filter, err := query.ToModel()
	require.NoError(t, err)
	assert.Equal(t, order.OrderByTotal, filter.OrderBy)
	assert.True(t, filter.Descending)

	query = &queryOrdersRequest{Ordering: "created_at"}

	filter, err = query.ToModel()
	require.NoError(t, err)
	assert.Equal(t, order.OrderByCreatedAt, filter.OrderBy)
	assert.False(t, filter.Descending)
}

func TestToModelRejectsUnknownOrdering(t *testing.T) {
	query := &queryOrdersRequest{Ordering: "room_number"}

	_, err := query.ToModel()
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
}

func TestToModelRejectsUnknownStatus(t *testing.T) {
	query := &queryOrdersRequest{Status: "shipped"}

	_, err := query.ToModel()
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
}

func TestToModelRejectsUnknownType(t *testing.T) {
	query := &queryOrdersRequest{Type: "minibar"}

	_, err := query.ToModel()
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
}

func TestToModelPassesFiltersThrough(t *testing.T) {
	query := &queryOrdersRequest{
		Status:     "ready",
		Type:       "bar",
		RoomNumber: "202",
		Search:     "wells",
		Limit:      20,
		Offset:     40,
	}

	filter, err := query.ToModel()
	require.NoError(t, err)
	assert.Equal(t, order.StatusReady, filter.Status)
	assert.Equal(t, order.TypeBar, filter.Type)
	assert.Equal(t, "202", filter.RoomNumber)
	assert.Equal(t, "wells", filter.Search)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 40, filter.Offset)
}
