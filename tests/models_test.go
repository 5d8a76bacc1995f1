// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"testing"

	"github.com/gmwtech/corporate-site/models"
	testingutil "github.com/gmwtech/corporate-site/testing"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestContentStatus(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.True(t, models.ContentStatusDraft.Valid())
		assert.True(t, models.ContentStatusPublished.Valid())
		assert.True(t, models.ContentStatusArchived.Valid())
		assert.False(t, models.ContentStatus("deleted").Valid())
		assert.False(t, models.ContentStatus("").Valid())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "draft", models.ContentStatusDraft.String())
		assert.Equal(t, "published", models.ContentStatusPublished.String())
		assert.Equal(t, "archived", models.ContentStatusArchived.String())
	})
}

func TestInquiryStatus(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.True(t, models.InquiryStatusNew.Valid())
		assert.True(t, models.InquiryStatusInProgress.Valid())
		assert.True(t, models.InquiryStatusResolved.Valid())
		assert.True(t, models.InquiryStatusClosed.Valid())
		assert.False(t, models.InquiryStatus("spam").Valid())
	})

	t.Run("CanTransitionTo", func(t *testing.T) {
		// same status is always allowed
		assert.True(t, models.InquiryStatusNew.CanTransitionTo(models.InquiryStatusNew))
		assert.True(t, models.InquiryStatusClosed.CanTransitionTo(models.InquiryStatusClosed))

		// forward transitions
		assert.True(t, models.InquiryStatusNew.CanTransitionTo(models.InquiryStatusInProgress))
		assert.True(t, models.InquiryStatusNew.CanTransitionTo(models.InquiryStatusResolved))
		assert.True(t, models.InquiryStatusNew.CanTransitionTo(models.InquiryStatusClosed))
		assert.True(t, models.InquiryStatusInProgress.CanTransitionTo(models.InquiryStatusResolved))
		assert.True(t, models.InquiryStatusInProgress.CanTransitionTo(models.InquiryStatusClosed))
		assert.True(t, models.InquiryStatusResolved.CanTransitionTo(models.InquiryStatusClosed))

		// backward transitions are blocked
		assert.False(t, models.InquiryStatusInProgress.CanTransitionTo(models.InquiryStatusNew))
		assert.False(t, models.InquiryStatusResolved.CanTransitionTo(models.InquiryStatusInProgress))
		assert.False(t, models.InquiryStatusClosed.CanTransitionTo(models.InquiryStatusResolved))
		assert.False(t, models.InquiryStatusClosed.CanTransitionTo(models.InquiryStatusNew))
	})
}

func TestServiceCategory(t *testing.T) {
	assert.True(t, models.ServiceCategoryAIML.Valid())
	assert.True(t, models.ServiceCategoryBlockchain.Valid())
	assert.True(t, models.ServiceCategoryIOT.Valid())
	assert.True(t, models.ServiceCategoryDataAnalytics.Valid())
	assert.True(t, models.ServiceCategoryRiskPlanning.Valid())
	assert.True(t, models.ServiceCategoryGrowthStrategy.Valid())
	assert.False(t, models.ServiceCategory("consulting").Valid())
}

func TestSubsidiaryType(t *testing.T) {
	assert.True(t, models.SubsidiaryTypeLaoctaTechlabs.Valid())
	assert.True(t, models.SubsidiaryTypeIntegralIOT.Valid())
	assert.True(t, models.SubsidiaryTypeChaintum.Valid())
	assert.False(t, models.SubsidiaryType("holding").Valid())
}

func TestInquiryPriority(t *testing.T) {
	assert.True(t, models.ValidInquiryPriority(models.InquiryPriorityLow))
	assert.True(t, models.ValidInquiryPriority(models.InquiryPriorityMedium))
	assert.True(t, models.ValidInquiryPriority(models.InquiryPriorityHigh))
	assert.True(t, models.ValidInquiryPriority(models.InquiryPriorityUrgent))
	assert.False(t, models.ValidInquiryPriority("critical"))
	assert.False(t, models.ValidInquiryPriority(""))
}

func TestConfigValueType(t *testing.T) {
	assert.True(t, models.ValidConfigValueType(models.ConfigValueTypeString))
	assert.True(t, models.ValidConfigValueType(models.ConfigValueTypeInt))
	assert.True(t, models.ValidConfigValueType(models.ConfigValueTypeBool))
	assert.True(t, models.ValidConfigValueType(models.ConfigValueTypeJSON))
	assert.False(t, models.ValidConfigValueType("float"))
}

func TestUser(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		t.Run("CreateStaffUser", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.True(t, utils.IsTrue(user.IsActive))
			assert.False(t, utils.IsTrue(user.IsAdmin))
			assert.True(t, user.CanAuthor())
		})

		t.Run("CreateAdminUser", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(true)
			require.NoError(t, err)
			assert.True(t, utils.IsTrue(user.IsAdmin))
		})

		t.Run("PasswordHashing", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			assert.NotEmpty(t, user.HashedPassword)

			err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("TestPass123!"))
			assert.NoError(t, err)

			err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("WrongPassword"))
			assert.Error(t, err)
		})

		t.Run("InactiveUserCannotAuthor", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			user.IsActive = utils.ToPtr(false)
			require.NoError(t, testDB.DB.Save(user).Error)
			assert.False(t, user.CanAuthor())
		})

		t.Run("TableName", func(t *testing.T) {
			assert.Equal(t, "users", (&models.User{}).TableName())
		})

		t.Run("UniqueConstraints", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			duplicate := &models.User{
				Username:       user.Username,
				Email:          "other@example.com",
				HashedPassword: "hashedpassword",
				FullName:       "Other User",
			}
			err = testDB.DB.Create(duplicate).Error
			assert.Error(t, err)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestPage(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		t.Run("CreateDefaults", func(t *testing.T) {
			page := &models.Page{
				Title:   "About Us",
				Slug:    "about-us",
				Content: "<p>About.</p>",
			}
			require.NoError(t, testDB.DB.Create(page).Error)

			assert.Equal(t, models.ContentStatusDraft, page.Status)
			assert.False(t, utils.IsTrue(page.IsHomepage))
			assert.NotNil(t, page.SEOData)
			assert.False(t, page.CreatedAt.IsZero())
		})

		t.Run("IsPublished", func(t *testing.T) {
			draft, err := fixtures.CreateTestPage(models.ContentStatusDraft)
			require.NoError(t, err)
			assert.False(t, draft.IsPublished())

			published, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)
			assert.True(t, published.IsPublished())
		})

		t.Run("UniqueSlug", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			duplicate := &models.Page{
				Title: "Duplicate",
				Slug:  page.Slug,
			}
			err = testDB.DB.Create(duplicate).Error
			assert.Error(t, err)
		})

		t.Run("TableName", func(t *testing.T) {
			assert.Equal(t, "pages", (&models.Page{}).TableName())
		})

		return nil
	})
	require.NoError(t, err)
}

func TestContactInquiry(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		t.Run("CreateDefaults", func(t *testing.T) {
			inquiry := &models.ContactInquiry{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Subject: "Partnership",
				Message: "Hello",
			}
			require.NoError(t, testDB.DB.Create(inquiry).Error)

			assert.Equal(t, models.InquiryStatusNew, inquiry.Status)
			assert.Equal(t, models.InquiryPriorityMedium, inquiry.Priority)
			assert.Equal(t, utils.DefaultInquirySource, inquiry.Source)
			assert.Nil(t, inquiry.RespondedAt)
		})

		t.Run("IsOpen", func(t *testing.T) {
			open, err := fixtures.CreateTestInquiry(models.InquiryStatusNew)
			require.NoError(t, err)
			assert.True(t, open.IsOpen())

			closed, err := fixtures.CreateTestInquiry(models.InquiryStatusClosed)
			require.NoError(t, err)
			assert.False(t, closed.IsOpen())
		})

		t.Run("DuplicateEmailAllowed", func(t *testing.T) {
			first, err := fixtures.CreateTestInquiry(models.InquiryStatusNew)
			require.NoError(t, err)

			second := &models.ContactInquiry{
				Name:    "Repeat Visitor",
				Email:   first.Email,
				Subject: "Follow up",
				Message: "Second inquiry from the same address",
			}
			assert.NoError(t, testDB.DB.Create(second).Error)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestNewsletterSubscriber(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		t.Run("CreateDefaults", func(t *testing.T) {
			subscriber := &models.NewsletterSubscriber{
				Email: "reader@example.com",
			}
			require.NoError(t, testDB.DB.Create(subscriber).Error)

			assert.True(t, utils.IsTrue(subscriber.IsActive))
			assert.False(t, utils.IsTrue(subscriber.IsVerified))
			assert.False(t, subscriber.SubscribedAt.IsZero())
			assert.True(t, subscriber.IsSubscribed())
		})

		t.Run("UnsubscribedIsNotSubscribed", func(t *testing.T) {
			subscriber, err := fixtures.CreateTestSubscriber(true)
			require.NoError(t, err)

			subscriber.IsActive = utils.ToPtr(false)
			subscriber.UnsubscribedAt = utils.UTCNowPtr()
			require.NoError(t, testDB.DB.Save(subscriber).Error)
			assert.False(t, subscriber.IsSubscribed())
		})

		t.Run("UniqueEmail", func(t *testing.T) {
			subscriber, err := fixtures.CreateTestSubscriber(true)
			require.NoError(t, err)

			duplicate := &models.NewsletterSubscriber{Email: subscriber.Email}
			err = testDB.DB.Create(duplicate).Error
			assert.Error(t, err)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestCompanyInfoModel(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		info, err := fixtures.CreateTestCompanyInfo()
		require.NoError(t, err)
		assert.Equal(t, uint(utils.CompanyInfoID), info.ID)
		assert.NotNil(t, info.SocialLinks)
		assert.NotNil(t, info.Certifications)
		assert.Equal(t, "company_info", (&models.CompanyInfo{}).TableName())

		return nil
	})
	require.NoError(t, err)
}
