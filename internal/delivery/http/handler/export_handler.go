package handler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-dashboard/internal/pkg/errors"
	"github.com/transit-dashboard/internal/pkg/utils"
	"github.com/transit-dashboard/internal/report"
	"github.com/transit-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// ExportHandler serves the dashboard as an XLSX workbook.
type ExportHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// ExportXLSX godoc
// @Summary Export dashboard workbook
// @Description One sheet per aggregate plus a summary sheet. Empty selections export header-only sheets.
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param day query string false "Weekday name"
// @Param corridor query string false "Corridor name or ALL"
// @Param bank query []string false "Bank code, repeatable" collectionFormat(multi)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/export.xlsx [get]
func (h *ExportHandler) ExportXLSX(c *fiber.Ctx) error {
	req, err := parseDashboardRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.dashboardUC.GetDashboard(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, res.Dashboard); err != nil {
		h.logger.Error("Failed to build workbook", zap.Error(err))
		return utils.SendError(c, errors.ErrExportFailed)
	}

	f := res.Dashboard.Filter
	name := fmt.Sprintf("transit-%s-%s.xlsx", slug(f.Day), slug(f.Corridor))
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, report.ContentType)
	return c.Send(buf.Bytes())
}

// slug keeps letters and digits, lowercased, and collapses the rest to "-".
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
