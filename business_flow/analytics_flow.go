package businessflow

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AnalyticsFlow defines operations for traffic capture and reporting
type AnalyticsFlow interface {
	TrackPageView(ctx context.Context, req *dto.TrackPageViewRequest, metadata *ClientMetadata) (*dto.TrackPageViewResponse, error)
	GetPageAnalytics(ctx context.Context, pagePath string, since time.Time) (*dto.PageAnalytics, error)
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	SnapshotDay(ctx context.Context, date time.Time) (*dto.SiteAnalyticsItem, error)
	ListSiteAnalytics(ctx context.Context, from, to *time.Time) (*dto.ListSiteAnalyticsResponse, error)
}

// AnalyticsFlowImpl implements AnalyticsFlow
type AnalyticsFlowImpl struct {
	pageViewRepo   repository.PageViewRepository
	analyticsRepo  repository.SiteAnalyticsRepository
	inquiryRepo    repository.ContactInquiryRepository
	subscriberRepo repository.NewsletterSubscriberRepository
	blogRepo       repository.BlogPostRepository
	serviceRepo    repository.ServiceRepository
	db             *gorm.DB
}

// NewAnalyticsFlow creates a new analytics flow
func NewAnalyticsFlow(
	pageViewRepo repository.PageViewRepository,
	analyticsRepo repository.SiteAnalyticsRepository,
	inquiryRepo repository.ContactInquiryRepository,
	subscriberRepo repository.NewsletterSubscriberRepository,
	blogRepo repository.BlogPostRepository,
	serviceRepo repository.ServiceRepository,
	db *gorm.DB,
) AnalyticsFlow {
	return &AnalyticsFlowImpl{
		pageViewRepo:   pageViewRepo,
		analyticsRepo:  analyticsRepo,
		inquiryRepo:    inquiryRepo,
		subscriberRepo: subscriberRepo,
		blogRepo:       blogRepo,
		serviceRepo:    serviceRepo,
		db:             db,
	}
}

func (f *AnalyticsFlowImpl) TrackPageView(ctx context.Context, req *dto.TrackPageViewRequest, metadata *ClientMetadata) (*dto.TrackPageViewResponse, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ipAddress, userAgent := clientNetwork(metadata)

	view := models.PageView{
		PagePath:        req.PagePath,
		PageTitle:       req.PageTitle,
		UserIP:          ipAddress,
		UserAgent:       userAgent,
		Referrer:        req.Referrer,
		SessionID:       sessionID,
		DeviceType:      req.DeviceType,
		Browser:         req.Browser,
		OperatingSystem: req.OS,
		Country:         req.Country,
		City:            req.City,
		TimeOnPage:      req.TimeOnPage,
		Bounce:          req.Bounce,
		Conversion:      req.Conversion,
	}

	if err := f.pageViewRepo.Save(ctx, &view); err != nil {
		return nil, err
	}

	return &dto.TrackPageViewResponse{
		Message:   "Page view recorded",
		SessionID: sessionID,
	}, nil
}

func (f *AnalyticsFlowImpl) GetPageAnalytics(ctx context.Context, pagePath string, since time.Time) (*dto.PageAnalytics, error) {
	if pagePath == "" {
		return nil, NewValidationError("page path is required", nil)
	}

	stats, err := f.pageViewRepo.PathStats(ctx, pagePath, since)
	if err != nil {
		return nil, err
	}

	avgTime := decimal.Zero
	if stats.TimedViews > 0 {
		avgTime = decimal.NewFromInt(stats.TotalSeconds).
			Div(decimal.NewFromInt(stats.TimedViews)).Round(2)
	}

	return &dto.PageAnalytics{
		PagePath:       pagePath,
		Views:          stats.Views,
		UniqueVisitors: stats.UniqueVisitors,
		AvgTimeOnPage:  avgTime.String(),
		BounceRate:     ratio(stats.Bounces, stats.Views).String(),
		ConversionRate: ratio(stats.Conversions, stats.Views).String(),
	}, nil
}

func (f *AnalyticsFlowImpl) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalViews, err := f.pageViewRepo.Count(ctx, models.PageViewFilter{})
	if err != nil {
		return nil, err
	}
	uniqueVisitors, err := f.pageViewRepo.CountUniqueSessions(ctx, models.PageViewFilter{})
	if err != nil {
		return nil, err
	}
	totalContacts, err := f.inquiryRepo.Count(ctx, models.ContactInquiryFilter{})
	if err != nil {
		return nil, err
	}
	newToday, err := f.inquiryRepo.CountCreatedSince(ctx, utils.UTCToday())
	if err != nil {
		return nil, err
	}
	subscribers, err := f.subscriberRepo.Count(ctx, models.NewsletterSubscriberFilter{IsActive: utils.ToPtr(true)})
	if err != nil {
		return nil, err
	}
	publishedPosts, err := f.blogRepo.Count(ctx, models.BlogPostFilter{Status: utils.ToPtr(models.ContentStatusPublished)})
	if err != nil {
		return nil, err
	}
	activeServices, err := f.serviceRepo.Count(ctx, models.ServiceFilter{Status: utils.ToPtr(models.ContentStatusPublished)})
	if err != nil {
		return nil, err
	}
	bounces, err := f.pageViewRepo.Count(ctx, models.PageViewFilter{Bounce: utils.ToPtr(true)})
	if err != nil {
		return nil, err
	}
	conversions, err := f.pageViewRepo.Count(ctx, models.PageViewFilter{Conversion: utils.ToPtr(true)})
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		Message: "Dashboard statistics retrieved",
		Stats: dto.DashboardStats{
			TotalPageViews:        totalViews,
			UniqueVisitors:        uniqueVisitors,
			TotalContacts:         totalContacts,
			NewContactsToday:      newToday,
			NewsletterSubscribers: subscribers,
			PublishedBlogPosts:    publishedPosts,
			ActiveServices:        activeServices,
			BounceRate:            ratio(bounces, totalViews).String(),
			ConversionRate:        ratio(conversions, totalViews).String(),
		},
	}, nil
}

// SnapshotDay recomputes and upserts the aggregate row for the given date
func (f *AnalyticsFlowImpl) SnapshotDay(ctx context.Context, date time.Time) (*dto.SiteAnalyticsItem, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	views, err := f.pageViewRepo.ByFilter(ctx, models.PageViewFilter{
		ViewedAfter:  &dayStart,
		ViewedBefore: &dayEnd,
	}, "viewed_at ASC", 0, 0)
	if err != nil {
		return nil, err
	}

	newContacts, err := f.inquiryRepo.Count(ctx, models.ContactInquiryFilter{
		CreatedAfter:  &dayStart,
		CreatedBefore: &dayEnd,
	})
	if err != nil {
		return nil, err
	}

	sessions := make(map[string]struct{})
	pathViews := make(map[string]int)
	var bounces, conversions, totalSeconds, timedViews int64
	var organic, direct, referral, social int
	var desktop, mobile, tablet int

	for _, view := range views {
		if view.SessionID != "" {
			sessions[view.SessionID] = struct{}{}
		}
		pathViews[view.PagePath]++

		if utils.IsTrue(view.Bounce) {
			bounces++
		}
		if utils.IsTrue(view.Conversion) {
			conversions++
		}
		if view.TimeOnPage != nil {
			totalSeconds += int64(*view.TimeOnPage)
			timedViews++
		}

		switch classifyReferrer(view.Referrer) {
		case trafficOrganic:
			organic++
		case trafficSocial:
			social++
		case trafficReferral:
			referral++
		default:
			direct++
		}

		switch strings.ToLower(view.DeviceType) {
		case "desktop":
			desktop++
		case "mobile":
			mobile++
		case "tablet":
			tablet++
		}
	}

	totalViews := int64(len(views))
	avgSession := decimal.Zero
	if timedViews > 0 {
		avgSession = decimal.NewFromInt(totalSeconds).
			Div(decimal.NewFromInt(timedViews)).Round(2)
	}

	snapshot := models.SiteAnalytics{
		Date:               dayStart,
		PageViews:          int(totalViews),
		UniqueVisitors:     len(sessions),
		BounceRate:         ratio(bounces, totalViews),
		AvgSessionDuration: avgSession,
		NewContacts:        int(newContacts),
		ConversionRate:     ratio(conversions, totalViews),
		OrganicTraffic:     organic,
		DirectTraffic:      direct,
		ReferralTraffic:    referral,
		SocialTraffic:      social,
		DesktopUsers:       desktop,
		MobileUsers:        mobile,
		TabletUsers:        tablet,
		TopPages:           topPaths(pathViews, "", 10),
		TopServices:        topPaths(pathViews, "/services/", 10),
	}

	if err := f.analyticsRepo.UpsertByDate(ctx, &snapshot); err != nil {
		return nil, err
	}

	return ToSiteAnalyticsItem(&snapshot), nil
}

func (f *AnalyticsFlowImpl) ListSiteAnalytics(ctx context.Context, from, to *time.Time) (*dto.ListSiteAnalyticsResponse, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, NewValidationError("start date cannot be after end date", ErrStartDateAfterEndDate)
	}

	filter := models.SiteAnalyticsFilter{
		DateAfter:  from,
		DateBefore: to,
	}

	snapshots, err := f.analyticsRepo.ByFilter(ctx, filter, "date DESC", 0, 0)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SiteAnalyticsItem, 0, len(snapshots))
	for _, snapshot := range snapshots {
		items = append(items, *ToSiteAnalyticsItem(snapshot))
	}

	return &dto.ListSiteAnalyticsResponse{
		Message: "Site analytics retrieved",
		Items:   items,
	}, nil
}

const (
	trafficDirect   = "direct"
	trafficOrganic  = "organic"
	trafficSocial   = "social"
	trafficReferral = "referral"
)

var (
	searchEngines = []string{"google.", "bing.", "duckduckgo.", "yahoo.", "yandex."}
	socialSites   = []string{"facebook.", "twitter.", "x.com", "linkedin.", "instagram.", "t.co", "reddit.", "youtube."}
)

func classifyReferrer(referrer string) string {
	if referrer == "" {
		return trafficDirect
	}
	ref := strings.ToLower(referrer)
	for _, engine := range searchEngines {
		if strings.Contains(ref, engine) {
			return trafficOrganic
		}
	}
	for _, site := range socialSites {
		if strings.Contains(ref, site) {
			return trafficSocial
		}
	}
	return trafficReferral
}

// ratio returns part/total rounded to four decimal places, zero when total is zero
func ratio(part, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Div(decimal.NewFromInt(total)).Round(4)
}

// topPaths returns the most viewed paths with the given prefix, ordered by count
func topPaths(pathViews map[string]int, prefix string, limit int) models.StringList {
	type pathCount struct {
		path  string
		count int
	}

	counts := make([]pathCount, 0, len(pathViews))
	for path, count := range pathViews {
		if prefix != "" && !strings.HasPrefix(path, prefix) {
			continue
		}
		counts = append(counts, pathCount{path: path, count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].path < counts[j].path
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}

	paths := make(models.StringList, 0, len(counts))
	for _, c := range counts {
		paths = append(paths, c.path)
	}
	return paths
}

// ToSiteAnalyticsItem converts a snapshot model to its API representation
func ToSiteAnalyticsItem(snapshot *models.SiteAnalytics) *dto.SiteAnalyticsItem {
	return &dto.SiteAnalyticsItem{
		ID:                 snapshot.ID,
		Date:               snapshot.Date.Format("2006-01-02"),
		PageViews:          snapshot.PageViews,
		UniqueVisitors:     snapshot.UniqueVisitors,
		BounceRate:         snapshot.BounceRate.String(),
		AvgSessionDuration: snapshot.AvgSessionDuration.String(),
		NewContacts:        snapshot.NewContacts,
		ConversionRate:     snapshot.ConversionRate.String(),
		OrganicTraffic:     snapshot.OrganicTraffic,
		DirectTraffic:      snapshot.DirectTraffic,
		ReferralTraffic:    snapshot.ReferralTraffic,
		SocialTraffic:      snapshot.SocialTraffic,
		DesktopUsers:       snapshot.DesktopUsers,
		MobileUsers:        snapshot.MobileUsers,
		TabletUsers:        snapshot.TabletUsers,
		TopPages:           snapshot.TopPages,
		TopServices:        snapshot.TopServices,
	}
}
