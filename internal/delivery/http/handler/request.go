package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/transit-dashboard/internal/delivery/http/middleware"
	"github.com/transit-dashboard/internal/pkg/errors"
	"github.com/transit-dashboard/internal/pkg/utils"
	"github.com/transit-dashboard/internal/pkg/validator"
	"github.com/transit-dashboard/internal/usecase/dto"
)

// parseDashboardRequest reads day, corridor and repeated bank query params.
func parseDashboardRequest(c *fiber.Ctx) (dto.DashboardRequest, error) {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}
	return req, nil
}

// parseChartRequest reads the filter plus hour and format, and validates them.
func parseChartRequest(c *fiber.Ctx) (dto.ChartRequest, error) {
	var req dto.ChartRequest
	if err := c.QueryParser(&req); err != nil {
		return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := validator.Validate(req); err != nil {
		return req, validationError(err)
	}
	return req, nil
}

// validationError picks the most specific AppError for failed struct tags.
func validationError(err error) error {
	details := validator.FieldErrors(err)
	switch {
	case details["Hour"] != nil:
		return errors.ErrInvalidHour.WithDetails(details)
	case details["Day"] != nil:
		return errors.ErrInvalidDay.WithDetails(details)
	}
	return errors.ErrInvalidRequest.WithDetails(details)
}

func newMeta(c *fiber.Ctx, rows int, cached bool, start time.Time) *utils.Meta {
	return &utils.Meta{
		Rows:      rows,
		Cached:    cached,
		TimeMSec:  float64(time.Since(start).Microseconds()) / 1000,
		RequestID: middleware.RequestIDFrom(c),
	}
}
