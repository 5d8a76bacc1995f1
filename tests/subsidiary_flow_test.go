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

func TestSubsidiaryFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		subsidiaryRepo := repository.NewSubsidiaryRepository(testDB.DB)
		flow := businessflow.NewSubsidiaryFlow(subsidiaryRepo, testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("CreateSubsidiary", func(t *testing.T) {
			item, err := flow.CreateSubsidiary(ctx, &dto.SubsidiaryCreate{
				Name:           "Laocta Techlabs",
				Slug:           "laocta-techlabs",
				SubsidiaryType: "laocta_techlabs",
				Description:    "Applied AI research lab",
				FocusAreas:     []string{"ai", "ml"},
				SocialLinks:    map[string]string{"linkedin": "https://linkedin.com/company/laocta"},
			}, testClientMetadata())
			require.NoError(t, err)
			assert.NotZero(t, item.ID)
			assert.True(t, item.IsActive)
			assert.Equal(t, "laocta_techlabs", item.SubsidiaryType)
		})

		t.Run("CreateSubsidiaryRejectsUnknownType", func(t *testing.T) {
			_, err := flow.CreateSubsidiary(ctx, &dto.SubsidiaryCreate{
				Name:           "Phantom Unit",
				Slug:           "phantom-unit",
				SubsidiaryType: "holding",
				Description:    "Not a known business unit",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidSubsidiaryType(err))
			assert.Equal(t, businessflow.CodeValidationError, businessflow.ErrorCode(err))
		})

		t.Run("CreateSubsidiaryDuplicateSlug", func(t *testing.T) {
			existing, err := fixtures.CreateTestSubsidiary(models.SubsidiaryTypeChaintum, true)
			require.NoError(t, err)

			_, err = flow.CreateSubsidiary(ctx, &dto.SubsidiaryCreate{
				Name:           "Copycat",
				Slug:           existing.Slug,
				SubsidiaryType: "chaintum",
				Description:    "Duplicate slug",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsSlugAlreadyExists(err))
		})

		t.Run("GetSubsidiaryBySlugActiveOnly", func(t *testing.T) {
			inactive, err := fixtures.CreateTestSubsidiary(models.SubsidiaryTypeIntegralIOT, false)
			require.NoError(t, err)

			item, err := flow.GetSubsidiaryBySlug(ctx, inactive.Slug, false)
			require.NoError(t, err)
			assert.Equal(t, inactive.ID, item.ID)

			_, err = flow.GetSubsidiaryBySlug(ctx, inactive.Slug, true)
			require.Error(t, err)
			assert.True(t, businessflow.IsSubsidiaryNotFound(err))
		})

		t.Run("EmptyUpdateChangesNothing", func(t *testing.T) {
			subsidiary, err := fixtures.CreateTestSubsidiary(models.SubsidiaryTypeLaoctaTechlabs, true)
			require.NoError(t, err)

			item, err := flow.UpdateSubsidiary(ctx, subsidiary.ID, &dto.SubsidiaryUpdate{}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, subsidiary.Name, item.Name)
			assert.Equal(t, subsidiary.SubsidiaryType.String(), item.SubsidiaryType)
		})

		t.Run("ListSubsidiariesByType", func(t *testing.T) {
			_, err := fixtures.CreateTestSubsidiary(models.SubsidiaryTypeChaintum, true)
			require.NoError(t, err)

			resp, err := flow.ListSubsidiaries(ctx, &dto.ListSubsidiariesRequest{
				SubsidiaryType: utils.ToPtr("chaintum"),
			}, false)
			require.NoError(t, err)
			require.NotEmpty(t, resp.Items)
			for _, item := range resp.Items {
				assert.Equal(t, "chaintum", item.SubsidiaryType)
			}
		})

		t.Run("ListActiveOnly", func(t *testing.T) {
			resp, err := flow.ListSubsidiaries(ctx, &dto.ListSubsidiariesRequest{}, true)
			require.NoError(t, err)
			for _, item := range resp.Items {
				assert.True(t, item.IsActive)
			}
		})

		t.Run("DeleteSubsidiary", func(t *testing.T) {
			subsidiary, err := fixtures.CreateTestSubsidiary(models.SubsidiaryTypeIntegralIOT, true)
			require.NoError(t, err)

			require.NoError(t, flow.DeleteSubsidiary(ctx, subsidiary.ID))

			err = flow.DeleteSubsidiary(ctx, subsidiary.ID)
			require.Error(t, err)
			assert.True(t, businessflow.IsSubsidiaryNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}
