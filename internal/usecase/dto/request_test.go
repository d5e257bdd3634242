package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transit-dashboard/internal/pkg/validator"
	"github.com/transit-dashboard/internal/usecase/dto"
)

func TestDashboardRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.DashboardRequest
		wantErr bool
	}{
		{"empty is valid", dto.DashboardRequest{}, false},
		{"weekday", dto.DashboardRequest{Day: "Monday", Corridor: "1", Banks: []string{"dki"}}, false},
		{"lowercase day", dto.DashboardRequest{Day: "monday"}, true},
		{"not a day", dto.DashboardRequest{Day: "Someday"}, true},
		{"blank bank", dto.DashboardRequest{Day: "Friday", Banks: []string{""}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChartRequest_Validate(t *testing.T) {
	hour := func(h int) *int { return &h }

	assert.NoError(t, validator.Validate(dto.ChartRequest{Hour: hour(0)}))
	assert.NoError(t, validator.Validate(dto.ChartRequest{Hour: hour(23), Format: "png"}))
	assert.Error(t, validator.Validate(dto.ChartRequest{Hour: hour(24)}))
	assert.Error(t, validator.Validate(dto.ChartRequest{Hour: hour(-1)}))
	assert.Error(t, validator.Validate(dto.ChartRequest{Format: "gif"}))
}

func TestDashboardRequest_Filter(t *testing.T) {
	f := dto.DashboardRequest{Day: "Monday", Banks: []string{"emoney", "dki", "emoney"}}.Filter()

	assert.Equal(t, "Monday", f.Day)
	assert.Equal(t, "ALL", f.Corridor)
	assert.Equal(t, []string{"dki", "emoney"}, f.Banks)
}
