package handler

import (
	"html/template"
	"net/url"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/narrative"
	"github.com/transit-dashboard/internal/pkg/errors"
	"github.com/transit-dashboard/internal/pkg/utils"
	"github.com/transit-dashboard/internal/usecase"
	"github.com/transit-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// DashboardPageData - data for the dashboard page template
type DashboardPageData struct {
	Title         string
	Options       *dto.FilterOptionsResponse
	Dashboard     *domain.Dashboard
	SelectedBanks map[string]bool
	// Query is the encoded filter, appended to chart and export URLs.
	Query template.URL
}

// PageHandler renders the HTML dashboard from templates/dashboard.
type PageHandler struct {
	templates   *template.Template
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewPageHandler parses every *.html under dir/dashboard.
func NewPageHandler(dir string, dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.New("dashboard").
		Funcs(template.FuncMap{"hour": narrative.FormatHour}).
		ParseGlob(filepath.Join(dir, "dashboard", "*.html"))
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		templates:   tmpl,
		dashboardUC: dashboardUC,
		logger:      logger,
	}, nil
}

// RenderDashboard - renders the dashboard page for the filter in the query
func (h *PageHandler) RenderDashboard(c *fiber.Ctx) error {
	req, err := parseDashboardRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	opts, err := h.dashboardUC.GetFilterOptions()
	if err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.dashboardUC.GetDashboard(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	d := res.Dashboard
	data := DashboardPageData{
		Title:         "Transit Ridership Dashboard",
		Options:       opts,
		Dashboard:     d,
		SelectedBanks: make(map[string]bool, len(d.Filter.Banks)),
		Query:         template.URL(filterQuery(d.Filter)),
	}
	for _, b := range d.Filter.Banks {
		data.SelectedBanks[b] = true
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err := h.templates.ExecuteTemplate(c.Response().BodyWriter(), "base.html", data); err != nil {
		h.logger.Error("Failed to render dashboard page", zap.Error(err))
		c.Response().ResetBody()
		return utils.SendError(c, errors.ErrInternalServer)
	}
	return nil
}

func filterQuery(f domain.Filter) string {
	q := url.Values{}
	q.Set("day", f.Day)
	q.Set("corridor", f.Corridor)
	for _, b := range f.Banks {
		q.Add("bank", b)
	}
	return q.Encode()
}
