package handler

import (
	"bytes"
	stderrors "errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-dashboard/internal/charts"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/pkg/errors"
	"github.com/transit-dashboard/internal/pkg/utils"
	"github.com/transit-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// ChartHandler renders aggregates as SVG or PNG images.
type ChartHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewChartHandler creates a ChartHandler.
func NewChartHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

type renderFunc func(w io.Writer, d *domain.Dashboard, req chartParams) error

type chartParams struct {
	format charts.Format
	hour   *int
}

// GetHourlyChart godoc
// @Summary Hourly trend chart
// @Description Area chart with the peak hour annotated. format=png switches to PNG.
// @Tags Charts
// @Produce image/svg+xml
// @Produce image/png
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Param format query string false "svg or png" Enums(svg, png)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "No transactions match the filters"
// @Router /api/v1/charts/hourly.svg [get]
func (h *ChartHandler) GetHourlyChart(c *fiber.Ctx) error {
	return h.render(c, "hourly", func(w io.Writer, d *domain.Dashboard, p chartParams) error {
		return charts.RenderHourly(w, d.Hourly, p.format)
	})
}

// GetRoutesChart godoc
// @Summary Top corridors chart
// @Tags Charts
// @Produce image/svg+xml
// @Produce image/png
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Param format query string false "svg or png" Enums(svg, png)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/charts/routes.svg [get]
func (h *ChartHandler) GetRoutesChart(c *fiber.Ctx) error {
	return h.render(c, "routes", func(w io.Writer, d *domain.Dashboard, p chartParams) error {
		return charts.RenderRoutes(w, d.Routes, p.format)
	})
}

// GetPaymentsChart godoc
// @Summary Payment methods chart
// @Tags Charts
// @Produce image/svg+xml
// @Produce image/png
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Param format query string false "svg or png" Enums(svg, png)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/charts/payments.svg [get]
func (h *ChartHandler) GetPaymentsChart(c *fiber.Ctx) error {
	return h.render(c, "payments", func(w io.Writer, d *domain.Dashboard, p chartParams) error {
		return charts.RenderPayments(w, d.Payments, p.format)
	})
}

// GetGenderChart godoc
// @Summary Gender comparison frame
// @Description One hour of the animated gender comparison; hour defaults to the first hour with data. The y axis is shared by all frames.
// @Tags Charts
// @Produce image/svg+xml
// @Produce image/png
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Param hour query int false "Hour 0-23" minimum(0) maximum(23)
// @Param format query string false "svg or png" Enums(svg, png)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/charts/gender.svg [get]
func (h *ChartHandler) GetGenderChart(c *fiber.Ctx) error {
	return h.render(c, "gender", func(w io.Writer, d *domain.Dashboard, p chartParams) error {
		hour := 0
		switch {
		case p.hour != nil:
			hour = *p.hour
		case len(d.Gender.Hours) > 0:
			hour = d.Gender.Hours[0]
		}
		return charts.RenderGenderFrame(w, d.Gender, hour, p.format)
	})
}

func (h *ChartHandler) render(c *fiber.Ctx, name string, draw renderFunc) error {
	req, err := parseChartRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	format, err := charts.ParseFormat(req.Format)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	res, err := h.dashboardUC.GetDashboard(c.Context(), req.Dashboard())
	if err != nil {
		return utils.SendError(c, err)
	}

	var buf bytes.Buffer
	if err := draw(&buf, res.Dashboard, chartParams{format: format, hour: req.Hour}); err != nil {
		if stderrors.Is(err, charts.ErrNoData) {
			return utils.SendError(c, errors.ErrNoData)
		}
		h.logger.Error("Failed to render chart", zap.String("chart", name), zap.Error(err))
		return utils.SendError(c, errors.ErrChartRender)
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(buf.Bytes())
}
