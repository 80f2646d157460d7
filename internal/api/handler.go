package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ahacad/financemonitor/internal/catalog"
	"github.com/Ahacad/financemonitor/internal/domain/dto"
	"github.com/Ahacad/financemonitor/internal/domain/models"
	"github.com/Ahacad/financemonitor/internal/service"
	"github.com/Ahacad/financemonitor/internal/upstream"
)

// Handler provides HTTP handlers for the series and dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters
//   - Translate them into a TransformationRequest for the service layer
//   - Map service results and errors onto response DTOs and status codes
type Handler struct {
	svc service.SeriesService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.SeriesService) *Handler {
	return &Handler{svc: svc}
}

// GetSeries handles GET /api/v1/series/:id requests.
//
// GetSeries godoc
// @Summary      Get a transformed economic series
// @Description  Fetches a series from the upstream provider (or cache) and applies the requested transformation pipeline
// @Tags         series
// @Produce      json
// @Param        id                  path      string  true   "Series ID" example(GDP)
// @Param        transformation      query     string  false  "Point transform" example(pct_change)
// @Param        frequency           query     string  false  "Target frequency code (d, w, m, q, a)" example(q)
// @Param        aggregation_method  query     string  false  "Bucket reduction for resampling (first, last, avg, sum)" example(avg)
// @Param        units               query     string  false  "Target units" example(millions)
// @Param        start_date          query     string  false  "Inclusive start date (YYYY-MM-DD)" example(2020-01-01)
// @Param        end_date            query     string  false  "Inclusive end date (YYYY-MM-DD)" example(2024-12-31)
// @Param        limit               query     int     false  "Keep only the most recent N observations" example(24)
// @Success      200  {object}  dto.SeriesResponse     "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse      "Not Found"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/series/{id} [get]
func (h *Handler) GetSeries(c *gin.Context) {
	id := strings.ToUpper(strings.TrimSpace(c.Param("id")))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("series id is required", nil))
		return
	}

	req, err := parseTransformationRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	series, err := h.svc.GetSeries(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, upstream.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("series not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch series", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSeriesResponse(series))
}

// ListIndicators handles GET /api/v1/indicators requests.
//
// ListIndicators godoc
// @Summary      List catalog indicators
// @Description  Returns the static catalog of known indicators and their series bindings
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.IndicatorResponse  "Success"
// @Router       /api/v1/indicators [get]
func (h *Handler) ListIndicators(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewIndicatorResponses(catalog.Indicators()))
}

// GetDashboard handles GET /api/v1/dashboards/:name requests.
//
// GetDashboard godoc
// @Summary      Get a dashboard snapshot
// @Description  Fetches every series in the named dashboard concurrently, each with its default transformation
// @Tags         catalog
// @Produce      json
// @Param        name  path  string  true  "Dashboard name" example(overview)
// @Success      200  {object}  dto.DashboardResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse      "Not Found"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/dashboards/{name} [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	name := strings.ToLower(strings.TrimSpace(c.Param("name")))

	snap, err := h.svc.GetDashboard(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrDashboardNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("dashboard not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to assemble dashboard", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(snap))
}

// parseTransformationRequest validates query parameters and builds the
// request descriptor. Dates must be canonical YYYY-MM-DD; the engine relies
// on that format for ordering.
func parseTransformationRequest(c *gin.Context) (models.TransformationRequest, error) {
	req := models.TransformationRequest{
		Transformation:    strings.TrimSpace(c.Query("transformation")),
		Frequency:         strings.TrimSpace(c.Query("frequency")),
		AggregationMethod: strings.TrimSpace(c.Query("aggregation_method")),
		Units:             strings.TrimSpace(c.Query("units")),
	}

	for _, p := range []struct {
		name  string
		value string
		dst   *string
	}{
		{"start_date", c.Query("start_date"), &req.StartDate},
		{"end_date", c.Query("end_date"), &req.EndDate},
	} {
		if p.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", p.value); err != nil {
			return models.TransformationRequest{}, errors.New("invalid " + p.name + " format, expected YYYY-MM-DD")
		}
		*p.dst = p.value
	}

	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return models.TransformationRequest{}, errors.New("limit must be a positive integer")
		}
		req.Limit = n
	}

	return req, nil
}
