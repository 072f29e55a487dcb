package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bloodGroupPayload struct {
	BloodGroup string `validate:"required,bloodgroup"`
}

func TestValidateBloodGroupTag(t *testing.T) {
	cv := NewValidator()

	for _, group := range []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"} {
		assert.NoError(t, cv.Validate(&bloodGroupPayload{BloodGroup: group}))
	}

	for _, group := range []string{"", "C+", "ab+", "O", "O +"} {
		assert.Error(t, cv.Validate(&bloodGroupPayload{BloodGroup: group}))
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&bloodGroupPayload{BloodGroup: "C+"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted["BloodGroup"], "valid blood group")
}
