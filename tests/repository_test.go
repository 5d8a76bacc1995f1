// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	testingutil "github.com/gmwtech/corporate-site/testing"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewPageRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByID", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			found, err := repo.ByID(ctx, page.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, page.Slug, found.Slug)
		})

		t.Run("ByIDNotFound", func(t *testing.T) {
			page, err := repo.ByID(ctx, 99999)
			assert.NoError(t, err)
			assert.Nil(t, page)
		})

		t.Run("BySlug", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			found, err := repo.BySlug(ctx, page.Slug)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, page.ID, found.ID)

			missing, err := repo.BySlug(ctx, "no-such-page")
			assert.NoError(t, err)
			assert.Nil(t, missing)
		})

		t.Run("HomepageAndClearHomepage", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			page.IsHomepage = utils.ToPtr(true)
			require.NoError(t, repo.Update(ctx, page))

			home, err := repo.Homepage(ctx)
			require.NoError(t, err)
			require.NotNil(t, home)
			assert.Equal(t, page.ID, home.ID)

			require.NoError(t, repo.ClearHomepage(ctx))

			home, err = repo.Homepage(ctx)
			require.NoError(t, err)
			assert.Nil(t, home)
		})

		t.Run("ByFilterStatus", func(t *testing.T) {
			_, err := fixtures.CreateTestPage(models.ContentStatusDraft)
			require.NoError(t, err)
			published, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			pages, err := repo.ByFilter(ctx, models.PageFilter{
				Status: utils.ToPtr(models.ContentStatusPublished),
			}, "id ASC", 0, 0)
			require.NoError(t, err)
			require.NotEmpty(t, pages)
			for _, page := range pages {
				assert.Equal(t, models.ContentStatusPublished, page.Status)
			}

			count, err := repo.Count(ctx, models.PageFilter{Slug: &published.Slug})
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})

		t.Run("DuplicateSlug", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			duplicate := &models.Page{Title: "Duplicate", Slug: page.Slug}
			err = repo.Save(ctx, duplicate)
			require.Error(t, err)
			assert.True(t, repository.IsDuplicate(err))
		})

		t.Run("Delete", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusDraft)
			require.NoError(t, err)

			require.NoError(t, repo.Delete(ctx, page.ID))

			found, err := repo.ByID(ctx, page.ID)
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestUserRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewUserRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("ByUsernameOrEmail", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			byUsername, err := repo.ByUsernameOrEmail(ctx, user.Username)
			require.NoError(t, err)
			require.NotNil(t, byUsername)
			assert.Equal(t, user.ID, byUsername.ID)

			byEmail, err := repo.ByUsernameOrEmail(ctx, user.Email)
			require.NoError(t, err)
			require.NotNil(t, byEmail)
			assert.Equal(t, user.ID, byEmail.ID)

			missing, err := repo.ByUsernameOrEmail(ctx, "ghost@example.com")
			assert.NoError(t, err)
			assert.Nil(t, missing)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestBlogPostRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewBlogPostRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("IncrementViewCount", func(t *testing.T) {
			author, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)
			post, err := fixtures.CreateTestBlogPost(&author.ID, models.ContentStatusPublished)
			require.NoError(t, err)
			assert.Zero(t, post.ViewCount)

			require.NoError(t, repo.IncrementViewCount(ctx, post.ID))
			require.NoError(t, repo.IncrementViewCount(ctx, post.ID))

			found, err := repo.ByID(ctx, post.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, 2, found.ViewCount)
		})

		t.Run("ByFilterTag", func(t *testing.T) {
			author, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)
			post, err := fixtures.CreateTestBlogPost(&author.ID, models.ContentStatusPublished)
			require.NoError(t, err)

			posts, err := repo.ByFilter(ctx, models.BlogPostFilter{
				Tag: utils.ToPtr("golang"),
			}, "id ASC", 0, 0)
			require.NoError(t, err)
			require.NotEmpty(t, posts)

			found := false
			for _, p := range posts {
				if p.ID == post.ID {
					found = true
				}
			}
			assert.True(t, found)

			none, err := repo.ByFilter(ctx, models.BlogPostFilter{
				Tag: utils.ToPtr("no-such-tag"),
			}, "id ASC", 0, 0)
			require.NoError(t, err)
			assert.Empty(t, none)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestContactInquiryRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewContactInquiryRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("CountCreatedSince", func(t *testing.T) {
			_, err := fixtures.CreateTestInquiry(models.InquiryStatusNew)
			require.NoError(t, err)

			count, err := repo.CountCreatedSince(ctx, utils.UTCNow().Add(-time.Hour))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, count, int64(1))

			future, err := repo.CountCreatedSince(ctx, utils.UTCNow().Add(time.Hour))
			require.NoError(t, err)
			assert.Zero(t, future)
		})

		t.Run("ByFilterStatus", func(t *testing.T) {
			inquiry, err := fixtures.CreateTestInquiry(models.InquiryStatusResolved)
			require.NoError(t, err)

			inquiries, err := repo.ByFilter(ctx, models.ContactInquiryFilter{
				Status: utils.ToPtr(models.InquiryStatusResolved),
			}, "id ASC", 0, 0)
			require.NoError(t, err)
			require.NotEmpty(t, inquiries)
			assert.Equal(t, inquiry.ID, inquiries[len(inquiries)-1].ID)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestNewsletterSubscriberRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewNewsletterSubscriberRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("ByEmail", func(t *testing.T) {
			subscriber, err := fixtures.CreateTestSubscriber(true)
			require.NoError(t, err)

			found, err := repo.ByEmail(ctx, subscriber.Email)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, subscriber.ID, found.ID)
		})

		t.Run("ByVerificationToken", func(t *testing.T) {
			subscriber, err := fixtures.CreateTestSubscriber(false)
			require.NoError(t, err)
			require.NotEmpty(t, subscriber.VerificationToken)

			found, err := repo.ByVerificationToken(ctx, subscriber.VerificationToken)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, subscriber.ID, found.ID)

			missing, err := repo.ByVerificationToken(ctx, "bogus-token")
			assert.NoError(t, err)
			assert.Nil(t, missing)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestSiteConfigurationRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewSiteConfigurationRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("ByKey", func(t *testing.T) {
			setting, err := fixtures.CreateTestSetting(false)
			require.NoError(t, err)

			found, err := repo.ByKey(ctx, setting.Key)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, setting.Value, found.Value)
		})

		t.Run("ListPublic", func(t *testing.T) {
			public, err := fixtures.CreateTestSetting(true)
			require.NoError(t, err)
			private, err := fixtures.CreateTestSetting(false)
			require.NoError(t, err)

			settings, err := repo.ListPublic(ctx)
			require.NoError(t, err)

			keys := make(map[string]bool, len(settings))
			for _, s := range settings {
				keys[s.Key] = true
			}
			assert.True(t, keys[public.Key])
			assert.False(t, keys[private.Key])
		})

		return nil
	})
	require.NoError(t, err)
}

func TestCompanyInfoRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewCompanyInfoRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("GetEmpty", func(t *testing.T) {
			info, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Nil(t, info)
		})

		t.Run("UpsertAndGet", func(t *testing.T) {
			info := &models.CompanyInfo{
				ID:          utils.CompanyInfoID,
				CompanyName: "GMW Tech Group",
				Tagline:     "Engineering the future",
			}
			require.NoError(t, repo.Upsert(ctx, info))

			found, err := repo.Get(ctx)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "Engineering the future", found.Tagline)

			// upsert again updates the same row
			found.Tagline = "Updated tagline"
			require.NoError(t, repo.Upsert(ctx, found))

			again, err := repo.Get(ctx)
			require.NoError(t, err)
			require.NotNil(t, again)
			assert.Equal(t, uint(utils.CompanyInfoID), again.ID)
			assert.Equal(t, "Updated tagline", again.Tagline)
		})

		t.Run("CoordinatesSurviveRoundTrip", func(t *testing.T) {
			lat, err := decimal.NewFromString("35.689198")
			require.NoError(t, err)
			lon, err := decimal.NewFromString("-51.388973")
			require.NoError(t, err)

			info, err := repo.Get(ctx)
			require.NoError(t, err)
			require.NotNil(t, info)
			info.Latitude = &lat
			info.Longitude = &lon
			require.NoError(t, repo.Upsert(ctx, info))

			stored, err := repo.Get(ctx)
			require.NoError(t, err)
			require.NotNil(t, stored)
			require.NotNil(t, stored.Latitude)
			require.NotNil(t, stored.Longitude)
			assert.True(t, lat.Equal(*stored.Latitude), "latitude changed across round trip: %s", stored.Latitude)
			assert.True(t, lon.Equal(*stored.Longitude), "longitude changed across round trip: %s", stored.Longitude)
			assert.Equal(t, "35.689198", stored.Latitude.String())
			assert.Equal(t, "-51.388973", stored.Longitude.String())
		})

		return nil
	})
	require.NoError(t, err)
}

func TestPageViewRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewPageViewRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		since := utils.UTCNow().Add(-time.Hour)

		seed := []*models.PageView{
			{PagePath: "/services/ai", SessionID: "s1", TimeOnPage: utils.ToPtr(30), Bounce: utils.ToPtr(false), Conversion: utils.ToPtr(true)},
			{PagePath: "/services/ai", SessionID: "s1", TimeOnPage: utils.ToPtr(90), Bounce: utils.ToPtr(false), Conversion: utils.ToPtr(false)},
			{PagePath: "/services/ai", SessionID: "s2", Bounce: utils.ToPtr(true), Conversion: utils.ToPtr(false)},
			{PagePath: "/about", SessionID: "s3", Bounce: utils.ToPtr(false), Conversion: utils.ToPtr(false)},
		}
		require.NoError(t, repo.SaveBatch(ctx, seed))

		t.Run("PathStats", func(t *testing.T) {
			stats, err := repo.PathStats(ctx, "/services/ai", since)
			require.NoError(t, err)
			require.NotNil(t, stats)
			assert.Equal(t, int64(3), stats.Views)
			assert.Equal(t, int64(2), stats.UniqueVisitors)
			assert.Equal(t, int64(120), stats.TotalSeconds)
			assert.Equal(t, int64(2), stats.TimedViews)
			assert.Equal(t, int64(1), stats.Bounces)
			assert.Equal(t, int64(1), stats.Conversions)
		})

		t.Run("CountUniqueSessions", func(t *testing.T) {
			unique, err := repo.CountUniqueSessions(ctx, models.PageViewFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(3), unique)
		})

		t.Run("TopPaths", func(t *testing.T) {
			paths, err := repo.TopPaths(ctx, since, 5)
			require.NoError(t, err)
			require.NotEmpty(t, paths)
			assert.Equal(t, "/services/ai", paths[0].PagePath)
			assert.Equal(t, int64(3), paths[0].Views)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestSiteAnalyticsRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewSiteAnalyticsRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		t.Run("UpsertByDate", func(t *testing.T) {
			snapshot := &models.SiteAnalytics{Date: day, PageViews: 10, UniqueVisitors: 4}
			require.NoError(t, repo.UpsertByDate(ctx, snapshot))

			found, err := repo.ByDate(ctx, day)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, 10, found.PageViews)

			// recomputing the same day replaces the aggregates
			second := &models.SiteAnalytics{Date: day, PageViews: 25, UniqueVisitors: 9}
			require.NoError(t, repo.UpsertByDate(ctx, second))

			found, err = repo.ByDate(ctx, day)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, 25, found.PageViews)

			count, err := repo.Count(ctx, models.SiteAnalyticsFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestWithTransactionRollback(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewPageRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		sentinel := errors.New("forced rollback")
		err := repository.WithTransaction(ctx, testDB.DB, func(txCtx context.Context) error {
			page := &models.Page{Title: "Rolled Back", Slug: "rolled-back"}
			if err := repo.Save(txCtx, page); err != nil {
				return err
			}
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		page, err := repo.BySlug(ctx, "rolled-back")
		require.NoError(t, err)
		assert.Nil(t, page)

		return nil
	})
	require.NoError(t, err)
}

func TestClearAllTables(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		_, err := fixtures.CreateTestPage(models.ContentStatusPublished)
		require.NoError(t, err)
		_, err = fixtures.CreateTestSetting(true)
		require.NoError(t, err)
		_, err = fixtures.CreateTestInquiry(models.InquiryStatusNew)
		require.NoError(t, err)

		require.NoError(t, testDB.ClearAllTables())

		pageCount, err := repository.NewPageRepository(testDB.DB).Count(ctx, models.PageFilter{})
		require.NoError(t, err)
		assert.Zero(t, pageCount)

		settingCount, err := repository.NewSiteConfigurationRepository(testDB.DB).Count(ctx, models.SiteConfigurationFilter{})
		require.NoError(t, err)
		assert.Zero(t, settingCount)

		inquiryCount, err := repository.NewContactInquiryRepository(testDB.DB).Count(ctx, models.ContactInquiryFilter{})
		require.NoError(t, err)
		assert.Zero(t, inquiryCount)

		return nil
	})
	require.NoError(t, err)
}
