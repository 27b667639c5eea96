package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondesk/pkg/platform/sentinel"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs given on the command line must be positive decimal integers"
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParsePersonID("")
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseOfficialID("abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		_, err := ParseBankDetailID("0")
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
		_, err = ParsePersonID("-4")
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})

	t.Run("accepts padded positive ids", func(t *testing.T) {
		id, err := ParsePersonID(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, PersonID(42), id)
		assert.Equal(t, "42", id.String())
	})
}

func TestPersonID_IsZero(t *testing.T) {
	assert.True(t, PersonID(0).IsZero())
	assert.False(t, PersonID(7).IsZero())
}
