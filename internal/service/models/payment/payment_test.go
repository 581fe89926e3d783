package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "completed", "failed"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, status.String())
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	_, err := ParseStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseMethod(t *testing.T) {
	for _, raw := range []string{"cash", "credit", "debit", "room-charge"} {
		method, err := ParseMethod(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, method.String())
	}
}

func TestParseMethodRejectsUnknown(t *testing.T) {
	_, err := ParseMethod("crypto")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}
