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

func TestBlogFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		blogRepo := repository.NewBlogPostRepository(testDB.DB)
		userRepo := repository.NewUserRepository(testDB.DB)
		flow := businessflow.NewBlogFlow(blogRepo, userRepo, testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("CreatePostWithAuthor", func(t *testing.T) {
			author, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			item, err := flow.CreateBlogPost(ctx, &dto.BlogPostCreate{
				Title:    "Edge Inference in Production",
				Slug:     "edge-inference-in-production",
				Excerpt:  "Lessons from the field",
				AuthorID: &author.ID,
				Tags:     []string{"ai", "edge"},
			}, testClientMetadata())
			require.NoError(t, err)
			assert.NotZero(t, item.ID)
			assert.Equal(t, "draft", item.Status)
			assert.Equal(t, utils.DefaultBlogCategory, item.Category)
			require.NotNil(t, item.AuthorName)
			assert.Equal(t, author.FullName, *item.AuthorName)
			assert.Nil(t, item.PublishedAt)
		})

		t.Run("CreatePostRejectsUnknownAuthor", func(t *testing.T) {
			unknown := uint(99999)
			_, err := flow.CreateBlogPost(ctx, &dto.BlogPostCreate{
				Title:    "Orphan Post",
				Slug:     "orphan-post",
				AuthorID: &unknown,
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsAuthorNotFound(err))
		})

		t.Run("CreatePostRejectsInactiveAuthor", func(t *testing.T) {
			author, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)
			author.IsActive = utils.ToPtr(false)
			require.NoError(t, testDB.DB.Save(author).Error)

			_, err = flow.CreateBlogPost(ctx, &dto.BlogPostCreate{
				Title:    "Dormant Author Post",
				Slug:     "dormant-author-post",
				AuthorID: &author.ID,
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsAuthorInactive(err))
		})

		t.Run("FirstPublishStampsPublishedAt", func(t *testing.T) {
			post, err := fixtures.CreateTestBlogPost(nil, models.ContentStatusDraft)
			require.NoError(t, err)
			require.Nil(t, post.PublishedAt)

			item, err := flow.UpdateBlogPost(ctx, post.ID, &dto.BlogPostUpdate{
				Status: utils.ToPtr("published"),
			}, testClientMetadata())
			require.NoError(t, err)
			require.NotNil(t, item.PublishedAt)
			firstPublished := *item.PublishedAt

			// archive and republish; the original timestamp survives
			_, err = flow.UpdateBlogPost(ctx, post.ID, &dto.BlogPostUpdate{
				Status: utils.ToPtr("archived"),
			}, testClientMetadata())
			require.NoError(t, err)

			item, err = flow.UpdateBlogPost(ctx, post.ID, &dto.BlogPostUpdate{
				Status: utils.ToPtr("published"),
			}, testClientMetadata())
			require.NoError(t, err)
			require.NotNil(t, item.PublishedAt)
			assert.Equal(t, firstPublished, *item.PublishedAt)
		})

		t.Run("ReadBlogPostCountsView", func(t *testing.T) {
			post, err := fixtures.CreateTestBlogPost(nil, models.ContentStatusPublished)
			require.NoError(t, err)

			item, err := flow.ReadBlogPost(ctx, post.Slug)
			require.NoError(t, err)
			assert.Equal(t, 1, item.ViewCount)

			item, err = flow.ReadBlogPost(ctx, post.Slug)
			require.NoError(t, err)
			assert.Equal(t, 2, item.ViewCount)
		})

		t.Run("ReadBlogPostHidesDrafts", func(t *testing.T) {
			draft, err := fixtures.CreateTestBlogPost(nil, models.ContentStatusDraft)
			require.NoError(t, err)

			_, err = flow.ReadBlogPost(ctx, draft.Slug)
			require.Error(t, err)
			assert.True(t, businessflow.IsBlogPostNotFound(err))

			// the failed read did not count
			found, err := blogRepo.ByID(ctx, draft.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Zero(t, found.ViewCount)
		})

		t.Run("ListByCategory", func(t *testing.T) {
			post, err := fixtures.CreateTestBlogPost(nil, models.ContentStatusPublished)
			require.NoError(t, err)

			resp, err := flow.ListBlogPosts(ctx, &dto.ListBlogPostsRequest{
				Category: utils.ToPtr("technology"),
			}, true)
			require.NoError(t, err)
			require.NotEmpty(t, resp.Items)

			found := false
			for _, item := range resp.Items {
				assert.Equal(t, "technology", item.Category)
				if item.ID == post.ID {
					found = true
				}
			}
			assert.True(t, found)
		})

		t.Run("DeleteBlogPost", func(t *testing.T) {
			post, err := fixtures.CreateTestBlogPost(nil, models.ContentStatusDraft)
			require.NoError(t, err)

			require.NoError(t, flow.DeleteBlogPost(ctx, post.ID))

			err = flow.DeleteBlogPost(ctx, post.ID)
			require.Error(t, err)
			assert.True(t, businessflow.IsBlogPostNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}
