// Package tests contains test cases for business flows
package tests

import (
	"testing"

	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	testingutil "github.com/gmwtech/corporate-site/testing"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClientMetadata() *businessflow.ClientMetadata {
	return businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")
}

func TestPageFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		pageRepo := repository.NewPageRepository(testDB.DB)
		flow := businessflow.NewPageFlow(pageRepo, testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("CreatePageDefaultsToDraft", func(t *testing.T) {
			item, err := flow.CreatePage(ctx, &dto.PageCreate{
				Title: "Careers",
				Slug:  "careers",
			}, testClientMetadata())
			require.NoError(t, err)
			assert.NotZero(t, item.ID)
			assert.Equal(t, "draft", item.Status)
		})

		t.Run("CreatePageRejectsInvalidStatus", func(t *testing.T) {
			_, err := flow.CreatePage(ctx, &dto.PageCreate{
				Title:  "Bad Status",
				Slug:   "bad-status",
				Status: utils.ToPtr("live"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidStatus(err))
			assert.Equal(t, businessflow.CodeValidationError, businessflow.ErrorCode(err))
		})

		t.Run("CreatePageDuplicateSlug", func(t *testing.T) {
			existing, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			_, err = flow.CreatePage(ctx, &dto.PageCreate{
				Title: "Copycat",
				Slug:  existing.Slug,
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsSlugAlreadyExists(err))

			// the original row is untouched
			original, err := pageRepo.BySlug(ctx, existing.Slug)
			require.NoError(t, err)
			require.NotNil(t, original)
			assert.Equal(t, existing.Title, original.Title)
		})

		t.Run("HomepageClearThenSet", func(t *testing.T) {
			first, err := flow.CreatePage(ctx, &dto.PageCreate{
				Title:      "Home v1",
				Slug:       "home-v1",
				Status:     utils.ToPtr("published"),
				IsHomepage: utils.ToPtr(true),
			}, testClientMetadata())
			require.NoError(t, err)
			assert.True(t, first.IsHomepage)

			second, err := flow.CreatePage(ctx, &dto.PageCreate{
				Title:      "Home v2",
				Slug:       "home-v2",
				Status:     utils.ToPtr("published"),
				IsHomepage: utils.ToPtr(true),
			}, testClientMetadata())
			require.NoError(t, err)
			assert.True(t, second.IsHomepage)

			// only the newest page carries the flag
			home, err := flow.GetHomepage(ctx)
			require.NoError(t, err)
			assert.Equal(t, second.ID, home.ID)

			old, err := pageRepo.ByID(ctx, first.ID)
			require.NoError(t, err)
			require.NotNil(t, old)
			assert.False(t, utils.IsTrue(old.IsHomepage))
		})

		t.Run("EmptyUpdateChangesNothing", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusPublished)
			require.NoError(t, err)

			item, err := flow.UpdatePage(ctx, page.ID, &dto.PageUpdate{}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, page.Title, item.Title)
			assert.Equal(t, page.Slug, item.Slug)
			assert.Equal(t, page.Status.String(), item.Status)
		})

		t.Run("UpdateNotFound", func(t *testing.T) {
			_, err := flow.UpdatePage(ctx, 99999, &dto.PageUpdate{
				Title: utils.ToPtr("Ghost"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsPageNotFound(err))
			assert.Equal(t, businessflow.CodeNotFound, businessflow.ErrorCode(err))
		})

		t.Run("GetPageBySlugPublishedOnly", func(t *testing.T) {
			draft, err := fixtures.CreateTestPage(models.ContentStatusDraft)
			require.NoError(t, err)

			// admin view finds the draft
			item, err := flow.GetPageBySlug(ctx, draft.Slug, false)
			require.NoError(t, err)
			assert.Equal(t, draft.ID, item.ID)

			// public view does not
			_, err = flow.GetPageBySlug(ctx, draft.Slug, true)
			require.Error(t, err)
			assert.True(t, businessflow.IsPageNotFound(err))
		})

		t.Run("ListPublishedOnly", func(t *testing.T) {
			resp, err := flow.ListPages(ctx, &dto.ListPagesRequest{}, true)
			require.NoError(t, err)
			for _, item := range resp.Items {
				assert.Equal(t, "published", item.Status)
			}
		})

		t.Run("DeletePage", func(t *testing.T) {
			page, err := fixtures.CreateTestPage(models.ContentStatusDraft)
			require.NoError(t, err)

			require.NoError(t, flow.DeletePage(ctx, page.ID))

			err = flow.DeletePage(ctx, page.ID)
			require.Error(t, err)
			assert.True(t, businessflow.IsPageNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}
