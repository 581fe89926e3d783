package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "preparing", "ready", "delivered", "paid"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, status.String())
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	_, err := ParseStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseType(t *testing.T) {
	for _, raw := range []string{"room-service", "restaurant", "bar"} {
		typ, err := ParseType(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, typ.String())
	}
}

func TestParseTypeRejectsUnknown(t *testing.T) {
	_, err := ParseType("minibar")
	assert.ErrorIs(t, err, ErrInvalidType)
}
