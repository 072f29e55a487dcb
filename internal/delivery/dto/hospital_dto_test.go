package dto

import (
	"testing"

	"bloodlink/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func fullAvailabilityRequest() *UpdateAvailabilityRequest {
	return &UpdateAvailabilityRequest{
		APos:  intPtr(1),
		ANeg:  intPtr(0),
		BPos:  intPtr(2),
		BNeg:  intPtr(0),
		ABPos: intPtr(3),
		ABNeg: intPtr(0),
		OPos:  intPtr(4),
		ONeg:  intPtr(0),
	}
}

func TestUpdateAvailabilityRequestAcceptsFullMap(t *testing.T) {
	cv := validator.NewValidator()
	assert.NoError(t, cv.Validate(fullAvailabilityRequest()))
}

func TestUpdateAvailabilityRequestRejectsPartialMap(t *testing.T) {
	cv := validator.NewValidator()

	// Explicit zero is fine; an omitted group is not.
	req := fullAvailabilityRequest()
	req.ABNeg = nil

	err := cv.Validate(req)
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted["ABNeg"], "required")
}

func TestUpdateAvailabilityRequestRejectsNegativeCount(t *testing.T) {
	cv := validator.NewValidator()

	req := fullAvailabilityRequest()
	req.OPos = intPtr(-1)

	err := cv.Validate(req)
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted["OPos"], "greater than or equal to 0")
}
