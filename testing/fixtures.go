// Package testing provides test utilities and database setup for testing the corporate site backend
package testing

import (
	"fmt"
	"math/rand"

	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/utils"
	"golang.org/x/crypto/bcrypt"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestUser creates a test staff user
func (tf *TestFixtures) CreateTestUser(isAdmin bool) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("TestPass123!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// random suffix keeps usernames and emails unique across fixtures
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	user := &models.User{
		Username:       fmt.Sprintf("staff_%s", randomDigits),
		Email:          fmt.Sprintf("staff.%s@example.com", randomDigits),
		HashedPassword: string(hashedPassword),
		FullName:       "Jane Doe",
		IsActive:       utils.ToPtr(true),
		IsAdmin:        utils.ToPtr(isAdmin),
	}

	err = tf.DB.DB.Create(user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test user: %w", err)
	}

	return user, nil
}

// CreateTestPage creates a test page with the given status
func (tf *TestFixtures) CreateTestPage(status models.ContentStatus) (*models.Page, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	page := &models.Page{
		Title:           fmt.Sprintf("Test Page %s", randomDigits),
		Slug:            fmt.Sprintf("test-page-%s", randomDigits),
		Content:         "<p>Test page content.</p>",
		MetaDescription: "Test page meta description",
		Status:          status,
		IsHomepage:      utils.ToPtr(false),
		SortOrder:       0,
	}

	err := tf.DB.DB.Create(page).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test page: %w", err)
	}

	return page, nil
}

// CreateTestService creates a test service offering
func (tf *TestFixtures) CreateTestService(category models.ServiceCategory, status models.ContentStatus) (*models.Service, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	service := &models.Service{
		Title:       fmt.Sprintf("Test Service %s", randomDigits),
		Slug:        fmt.Sprintf("test-service-%s", randomDigits),
		Description: "Test service description",
		Category:    category,
		Features:    models.StringList{"feature-one", "feature-two"},
		Examples:    models.StringList{"example-one"},
		IsFeatured:  utils.ToPtr(false),
		SortOrder:   0,
		Status:      status,
	}

	err := tf.DB.DB.Create(service).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test service: %w", err)
	}

	return service, nil
}

// CreateTestSubsidiary creates a test subsidiary profile
func (tf *TestFixtures) CreateTestSubsidiary(subsidiaryType models.SubsidiaryType, isActive bool) (*models.Subsidiary, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	subsidiary := &models.Subsidiary{
		Name:           fmt.Sprintf("Test Subsidiary %s", randomDigits),
		Slug:           fmt.Sprintf("test-subsidiary-%s", randomDigits),
		SubsidiaryType: subsidiaryType,
		Tagline:        "Test tagline",
		Description:    "Test subsidiary description",
		FocusAreas:     models.StringList{"iot", "edge"},
		KeyServices:    models.StringList{"consulting"},
		IsActive:       utils.ToPtr(isActive),
		SortOrder:      0,
	}

	err := tf.DB.DB.Create(subsidiary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test subsidiary: %w", err)
	}

	return subsidiary, nil
}

// CreateTestBlogPost creates a test blog post for the given author
func (tf *TestFixtures) CreateTestBlogPost(authorID *uint, status models.ContentStatus) (*models.BlogPost, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	post := &models.BlogPost{
		Title:    fmt.Sprintf("Test Post %s", randomDigits),
		Slug:     fmt.Sprintf("test-post-%s", randomDigits),
		Excerpt:  "Test post excerpt",
		Content:  "<p>Test post content.</p>",
		AuthorID: authorID,
		Category: "technology",
		Tags:     models.StringList{"golang", "testing"},
		Status:   status,
	}

	if status == models.ContentStatusPublished {
		post.PublishedAt = utils.ToPtr(utils.UTCNow())
	}

	err := tf.DB.DB.Create(post).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test blog post: %w", err)
	}

	return post, nil
}

// CreateTestInquiry creates a test contact inquiry
func (tf *TestFixtures) CreateTestInquiry(status models.InquiryStatus) (*models.ContactInquiry, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	inquiry := &models.ContactInquiry{
		Name:      "John Doe",
		Email:     fmt.Sprintf("john.doe.%s@example.com", randomDigits),
		Phone:     fmt.Sprintf("+989%s", randomDigits),
		Company:   "Test Company Ltd",
		Subject:   "Test inquiry subject",
		Message:   "Test inquiry message with enough detail to be realistic.",
		Status:    status,
		Priority:  models.InquiryPriorityMedium,
		Source:    "website",
		IPAddress: "127.0.0.1",
		UserAgent: "Test User Agent",
	}

	err := tf.DB.DB.Create(inquiry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test inquiry: %w", err)
	}

	return inquiry, nil
}

// CreateTestSubscriber creates a test newsletter subscriber
func (tf *TestFixtures) CreateTestSubscriber(verified bool) (*models.NewsletterSubscriber, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	subscriber := &models.NewsletterSubscriber{
		Email:      fmt.Sprintf("subscriber.%s@example.com", randomDigits),
		Name:       "Test Subscriber",
		IsActive:   utils.ToPtr(true),
		IsVerified: utils.ToPtr(verified),
		Interests:  models.StringList{"technology"},
		Source:     "website",
		IPAddress:  "127.0.0.1",
		UserAgent:  "Test User Agent",
	}

	if !verified {
		subscriber.VerificationToken = fmt.Sprintf("test-token-%s", randomDigits)
	}

	err := tf.DB.DB.Create(subscriber).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test subscriber: %w", err)
	}

	return subscriber, nil
}

// CreateTestPageView creates a test page view event for the given path
func (tf *TestFixtures) CreateTestPageView(pagePath string) (*models.PageView, error) {
	view := &models.PageView{
		PagePath:   pagePath,
		PageTitle:  "Test Page",
		UserIP:     "127.0.0.1",
		UserAgent:  "Test User Agent",
		Referrer:   "https://www.google.com/search?q=test",
		SessionID:  fmt.Sprintf("session-%09d", rand.Intn(900000000)+100000000),
		DeviceType: "desktop",
		Bounce:     utils.ToPtr(false),
		Conversion: utils.ToPtr(false),
	}

	err := tf.DB.DB.Create(view).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test page view: %w", err)
	}

	return view, nil
}

// CreateTestSetting creates a test site configuration entry
func (tf *TestFixtures) CreateTestSetting(isPublic bool) (*models.SiteConfiguration, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	setting := &models.SiteConfiguration{
		Key:         fmt.Sprintf("test_setting_%s", randomDigits),
		Value:       "test-value",
		ValueType:   models.ConfigValueTypeString,
		Description: "Test configuration entry",
		Category:    "general",
		IsPublic:    utils.ToPtr(isPublic),
	}

	err := tf.DB.DB.Create(setting).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test setting: %w", err)
	}

	return setting, nil
}

// CreateTestCompanyInfo creates the company profile row
func (tf *TestFixtures) CreateTestCompanyInfo() (*models.CompanyInfo, error) {
	info := &models.CompanyInfo{
		ID:           utils.CompanyInfoID,
		CompanyName:  "GMW Tech Group",
		Tagline:      "Engineering the future",
		Mission:      "Test mission statement",
		PrimaryEmail: "info@gmw.tech",
		PrimaryPhone: "+982112345678",
		City:         "Tehran",
		Country:      "Iran",
	}

	err := tf.DB.DB.Create(info).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test company info: %w", err)
	}

	return info, nil
}
