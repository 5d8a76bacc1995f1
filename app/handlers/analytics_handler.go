package handlers

import (
	"strconv"
	"time"

	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AnalyticsHandler handles page view tracking and analytics endpoints
type AnalyticsHandler struct {
	analyticsFlow businessflow.AnalyticsFlow
	validator     *validator.Validate
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsFlow businessflow.AnalyticsFlow) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsFlow: analyticsFlow,
		validator:     validator.New(),
	}
}

// TrackPageView records a page view event
// @Summary Track page view
// @Description Records a page view, assigning a session ID when the caller has none
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body dto.TrackPageViewRequest true "Page view payload"
// @Success 201 {object} dto.APIResponse{data=dto.TrackPageViewResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/v1/analytics/track [post]
func (h *AnalyticsHandler) TrackPageView(c fiber.Ctx) error {
	var req dto.TrackPageViewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request format", businessflow.CodeValidationError, err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	ctx, cancel := createRequestContext(c, "track_page_view")
	defer cancel()

	result, err := h.analyticsFlow.TrackPageView(ctx, &req, clientMetadata(c))
	if err != nil {
		return flowErrorResponse(c, err, "Failed to track page view", "ANALYTICS_TRACK_FAILED")
	}

	return successResponse(c, fiber.StatusCreated, "Page view recorded", result)
}

// GetPageAnalytics returns aggregated stats for a single page path
// @Summary Get page analytics
// @Tags analytics
// @Produce json
// @Param path query string true "Page path"
// @Param days query int false "Lookback window in days" default(30)
// @Success 200 {object} dto.APIResponse{data=dto.PageAnalytics}
// @Failure 400 {object} dto.APIResponse
// @Router /api/v1/admin/analytics/pages [get]
func (h *AnalyticsHandler) GetPageAnalytics(c fiber.Ctx) error {
	pagePath := c.Query("path")
	if pagePath == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Page path is required", businessflow.CodeValidationError, nil)
	}

	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > 365 {
			return errorResponse(c, fiber.StatusBadRequest, "Days must be between 1 and 365", businessflow.CodeValidationError, nil)
		}
		days = parsed
	}
	since := utils.UTCNow().AddDate(0, 0, -days)

	ctx, cancel := createRequestContext(c, "get_page_analytics")
	defer cancel()

	stats, err := h.analyticsFlow.GetPageAnalytics(ctx, pagePath, since)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch page analytics", "ANALYTICS_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Page analytics retrieved successfully", stats)
}

// GetDashboardStats returns site-wide counters for the admin dashboard
// @Summary Get dashboard statistics
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse}
// @Router /api/v1/admin/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboardStats(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(c, "get_dashboard_stats")
	defer cancel()

	stats, err := h.analyticsFlow.GetDashboardStats(ctx)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to fetch dashboard stats", "ANALYTICS_FETCH_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// SnapshotDay aggregates one day of page views into a daily rollup
// @Summary Snapshot daily analytics
// @Description Aggregates page views for the given UTC day, defaulting to today
// @Tags analytics
// @Produce json
// @Param date query string false "Day to aggregate (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.SiteAnalyticsItem}
// @Failure 400 {object} dto.APIResponse
// @Router /api/v1/admin/analytics/snapshot [post]
func (h *AnalyticsHandler) SnapshotDay(c fiber.Ctx) error {
	date := utils.UTCNow()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Date must be in YYYY-MM-DD format", businessflow.CodeValidationError, nil)
		}
		date = parsed
	}

	ctx, cancel := createRequestContext(c, "snapshot_day")
	defer cancel()

	snapshot, err := h.analyticsFlow.SnapshotDay(ctx, date)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to snapshot analytics", "ANALYTICS_SNAPSHOT_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Analytics snapshot recorded", snapshot)
}

// ListSiteAnalytics returns daily rollups within an optional date range
// @Summary List site analytics
// @Tags analytics
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.ListSiteAnalyticsResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/v1/admin/analytics/daily [get]
func (h *AnalyticsHandler) ListSiteAnalytics(c fiber.Ctx) error {
	var from, to *time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "From date must be in YYYY-MM-DD format", businessflow.CodeValidationError, nil)
		}
		from = &parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "To date must be in YYYY-MM-DD format", businessflow.CodeValidationError, nil)
		}
		to = &parsed
	}

	ctx, cancel := createRequestContext(c, "list_site_analytics")
	defer cancel()

	analytics, err := h.analyticsFlow.ListSiteAnalytics(ctx, from, to)
	if err != nil {
		return flowErrorResponse(c, err, "Failed to list site analytics", "ANALYTICS_LIST_FAILED")
	}

	return successResponse(c, fiber.StatusOK, "Site analytics retrieved successfully", analytics)
}
