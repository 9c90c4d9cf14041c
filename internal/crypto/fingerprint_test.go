package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/models"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		attributes models.Attributes
		name       string
	}{
		{name: "simple attributes", attributes: models.Attributes{"name": "Sam", "email": "sam@example.com"}},
		{name: "nil values", attributes: models.Attributes{"name": nil}},
		{name: "empty attributes", attributes: models.Attributes{}},
		{name: "nil attributes", attributes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, err := Fingerprint(tt.attributes)
			require.NoError(t, err)
			assert.Len(t, fp, 32, "BLAKE2b-256 produces 32 bytes")
		})
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := models.Attributes{"name": "Sam", "email": "sam@example.com", "age": 42}
	b := models.Attributes{"age": 42, "email": "sam@example.com", "name": "Sam"}

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB, "Key order should not matter")
}

func TestFingerprint_DiffersOnValue(t *testing.T) {
	fpA, err := Fingerprint(models.Attributes{"name": "Sam"})
	require.NoError(t, err)
	fpB, err := Fingerprint(models.Attributes{"name": "Pat"})
	require.NoError(t, err)

	assert.NotEqual(t, fpA, fpB)
}

func TestFingerprint_Unmarshalable(t *testing.T) {
	_, err := Fingerprint(models.Attributes{"callback": func() {}})
	assert.Error(t, err)
}

func TestMatchFingerprint(t *testing.T) {
	attributes := models.Attributes{"name": "Sam"}
	stored, err := Fingerprint(attributes)
	require.NoError(t, err)

	assert.True(t, MatchFingerprint(attributes, stored))
	assert.False(t, MatchFingerprint(models.Attributes{"name": "Pat"}, stored))
	assert.False(t, MatchFingerprint(attributes, nil), "Empty stored fingerprint never matches")
	assert.False(t, MatchFingerprint(models.Attributes{"callback": func() {}}, stored))
}
