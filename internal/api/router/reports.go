package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage"
	"github.com/DjordjeVuckovic/ts-perf/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ReportsRouter struct {
	e      *echo.Echo
	reader storage.Reader
}

func NewReportsRouter(e *echo.Echo, reader storage.Reader) *ReportsRouter {
	return &ReportsRouter{
		e:      e,
		reader: reader,
	}
}

func (r *ReportsRouter) Bind() {
	g := r.e.Group("/reports")
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
}

// listHandler godoc
// @Summary List stored performance reports
// @Description Returns report summaries, newest first
// @Tags reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[report.Summary]
// @Failure 400 {object} map[string]string
// @Router /reports [get]
func (r *ReportsRouter) listHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := page.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	res, err := r.reader.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// getHandler godoc
// @Summary Get a performance report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} report.Report
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reports/{id} [get]
func (r *ReportsRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("report id must be a UUID", err)
	}

	rep, err := r.reader.Get(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rep)
}
