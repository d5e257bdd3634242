package dto

import "github.com/transit-dashboard/internal/domain"

// DashboardRequest - filter selection for every dashboard endpoint.
// Bank may be repeated: ?bank=dki&bank=emoney.
type DashboardRequest struct {
	Day      string   `query:"day" json:"day" validate:"omitempty,weekday"`
	Corridor string   `query:"corridor" json:"corridor" validate:"omitempty,max=100"`
	Banks    []string `query:"bank" json:"banks,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

// Filter converts the request into a domain filter. Day defaulting happens
// in the use case.
func (r DashboardRequest) Filter() domain.Filter {
	return domain.Filter{
		Day:      r.Day,
		Corridor: r.Corridor,
		Banks:    r.Banks,
	}.Normalized()
}

// ChartRequest - filter selection plus rendering options.
type ChartRequest struct {
	Day      string   `query:"day" validate:"omitempty,weekday"`
	Corridor string   `query:"corridor" validate:"omitempty,max=100"`
	Banks    []string `query:"bank" validate:"omitempty,max=20,dive,required,max=50"`
	Hour     *int     `query:"hour" validate:"omitempty,min=0,max=23"`
	Format   string   `query:"format" validate:"omitempty,oneof=svg png"`
}

// Dashboard returns the filter part of the chart request.
func (r ChartRequest) Dashboard() DashboardRequest {
	return DashboardRequest{Day: r.Day, Corridor: r.Corridor, Banks: r.Banks}
}
