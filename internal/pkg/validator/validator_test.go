package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-dashboard/internal/pkg/validator"
)

type dayRequest struct {
	Day   string   `validate:"required,weekday"`
	Banks []string `validate:"omitempty,dive,required"`
}

func TestValidate_Weekday(t *testing.T) {
	assert.NoError(t, validator.Validate(&dayRequest{Day: "Monday"}))
	assert.NoError(t, validator.Validate(&dayRequest{Day: "Sunday", Banks: []string{"dki"}}))

	err := validator.Validate(&dayRequest{Day: "Funday"})
	require.Error(t, err)
	assert.Equal(t, "weekday", validator.FieldErrors(err)["Day"])

	err = validator.Validate(&dayRequest{Day: "Monday", Banks: []string{""}})
	require.Error(t, err)
}

func TestIsWeekdayName(t *testing.T) {
	assert.True(t, validator.IsWeekdayName("Saturday"))
	assert.False(t, validator.IsWeekdayName("monday"))
	assert.False(t, validator.IsWeekdayName(""))
}
