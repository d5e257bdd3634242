package errors

import "net/http"

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidDay         = "INVALID_DAY"
	CodeInvalidHour        = "INVALID_HOUR"
	CodeNoData             = "NO_DATA"
	CodeDatasetUnavailable = "DATASET_UNAVAILABLE"
	CodeChartRender        = "CHART_RENDER_FAILED"
	CodeExportFailed       = "EXPORT_FAILED"
	CodeInternalServer     = "INTERNAL_SERVER_ERROR"
)

var (
	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidDay = New(
		CodeInvalidDay,
		"Day must be a weekday name, e.g. Monday",
		http.StatusBadRequest,
	)

	ErrInvalidHour = New(
		CodeInvalidHour,
		"Hour must be between 0 and 23",
		http.StatusBadRequest,
	)

	// ErrNoData is returned when the filtered view has nothing to chart.
	ErrNoData = New(
		CodeNoData,
		"No transactions match the selected filters",
		http.StatusNotFound,
	)

	ErrDatasetUnavailable = New(
		CodeDatasetUnavailable,
		"Dataset is not loaded",
		http.StatusServiceUnavailable,
	)

	ErrChartRender = New(
		CodeChartRender,
		"Failed to render chart",
		http.StatusInternalServerError,
	)

	ErrExportFailed = New(
		CodeExportFailed,
		"Failed to build export workbook",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
