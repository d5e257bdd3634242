package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-dashboard/internal/pkg/errors"
	"github.com/transit-dashboard/internal/pkg/utils"
	"github.com/transit-dashboard/internal/usecase"
	"github.com/transit-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// DashboardHandler serves the filter options and the JSON aggregates.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// Health godoc
// @Summary Service health
// @Description Dataset size and cache reachability
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/health [get]
func (h *DashboardHandler) Health(c *fiber.Ctx) error {
	info, err := h.dashboardUC.GetDatasetInfo()
	if err != nil {
		return utils.SendError(c, err)
	}

	cacheStatus := "ok"
	if err := h.dashboardUC.CacheHealth(c.Context()); err != nil {
		h.logger.Warn("Cache health check failed", zap.Error(err))
		cacheStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "healthy",
		"time":    time.Now(),
		"dataset": info,
		"cache":   cacheStatus,
	})
}

// GetFilters godoc
// @Summary Filter options
// @Description Distinct weekdays, ALL plus corridors, and bank codes present in the dataset
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterOptionsResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/filters [get]
func (h *DashboardHandler) GetFilters(c *fiber.Ctx) error {
	opts, err := h.dashboardUC.GetFilterOptions()
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, opts, nil)
}

// GetDashboard godoc
// @Summary Full dashboard
// @Description All five aggregates and the narrative for one filter. An empty selection returns empty=true, not an error.
// @Tags Dashboard
// @Produce json
// @Param day query string false "Weekday name, defaults to the first day in the data" example(Monday)
// @Param corridor query string false "Corridor name or ALL" default(ALL)
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=domain.Dashboard}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	return h.respond(c, func(res *dto.DashboardResult) interface{} {
		return res.Dashboard
	})
}

// GetHourly godoc
// @Summary Hourly trend
// @Tags Dashboard
// @Produce json
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=domain.HourlyTrend}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/hourly [get]
func (h *DashboardHandler) GetHourly(c *fiber.Ctx) error {
	return h.respond(c, func(res *dto.DashboardResult) interface{} {
		return res.Dashboard.Hourly
	})
}

// GetRoutes godoc
// @Summary Top corridors
// @Tags Dashboard
// @Produce json
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteRanking}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/routes [get]
func (h *DashboardHandler) GetRoutes(c *fiber.Ctx) error {
	return h.respond(c, func(res *dto.DashboardResult) interface{} {
		return res.Dashboard.Routes
	})
}

// GetLocations godoc
// @Summary Tap-in/tap-out map
// @Description First valid coordinate pairs in table order, with the center over all valid rows
// @Tags Dashboard
// @Produce json
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=domain.LocationMap}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/locations [get]
func (h *DashboardHandler) GetLocations(c *fiber.Ctx) error {
	return h.respond(c, func(res *dto.DashboardResult) interface{} {
		return res.Dashboard.Locations
	})
}

// GetPayments godoc
// @Summary Payment methods
// @Tags Dashboard
// @Produce json
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=domain.PaymentDistribution}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/payments [get]
func (h *DashboardHandler) GetPayments(c *fiber.Ctx) error {
	return h.respond(c, func(res *dto.DashboardResult) interface{} {
		return res.Dashboard.Payments
	})
}

// GetGender godoc
// @Summary Gender by hour
// @Tags Dashboard
// @Produce json
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=domain.GenderByHour}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/gender [get]
func (h *DashboardHandler) GetGender(c *fiber.Ctx) error {
	return h.respond(c, func(res *dto.DashboardResult) interface{} {
		return res.Dashboard.Gender
	})
}

// GetNarrative godoc
// @Summary Written summary
// @Description JSON sections by default; format=text returns the rendered summary as plain text.
// @Tags Dashboard
// @Produce json
// @Produce plain
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Param format query string false "json or text" Enums(json, text)
// @Success 200 {object} utils.SuccessResponse{data=domain.Narrative}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/narrative [get]
func (h *DashboardHandler) GetNarrative(c *fiber.Ctx) error {
	switch c.Query("format") {
	case "", "json":
		return h.respond(c, func(res *dto.DashboardResult) interface{} {
			return res.Dashboard.Narrative
		})
	case "text":
	default:
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"format": "oneof json text",
		}))
	}

	req, err := parseDashboardRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	res, err := h.dashboardUC.GetDashboard(c.Context(), req)
	if err != nil {
		h.logger.Warn("Failed to build dashboard", zap.String("path", c.Path()), zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(res.Dashboard.Narrative.Text)
}

func (h *DashboardHandler) respond(c *fiber.Ctx, pick func(*dto.DashboardResult) interface{}) error {
	start := time.Now()

	req, err := parseDashboardRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.dashboardUC.GetDashboard(c.Context(), req)
	if err != nil {
		h.logger.Warn("Failed to build dashboard", zap.String("path", c.Path()), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pick(res), newMeta(c, res.Dashboard.TotalRows, res.Cached, start))
}
