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

func TestServiceFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		serviceRepo := repository.NewServiceRepository(testDB.DB)
		flow := businessflow.NewServiceFlow(serviceRepo, testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("CreateServiceDefaultsToPublished", func(t *testing.T) {
			item, err := flow.CreateService(ctx, &dto.ServiceCreate{
				Title:       "Predictive Maintenance",
				Slug:        "predictive-maintenance",
				Description: "ML-driven maintenance scheduling",
				Category:    "ai_ml",
				Features:    []string{"anomaly detection"},
			}, testClientMetadata())
			require.NoError(t, err)
			assert.NotZero(t, item.ID)
			assert.Equal(t, "published", item.Status)
			assert.Equal(t, "ai_ml", item.Category)
		})

		t.Run("CreateServiceRejectsUnknownCategory", func(t *testing.T) {
			_, err := flow.CreateService(ctx, &dto.ServiceCreate{
				Title:       "Mystery",
				Slug:        "mystery",
				Description: "Unknown category",
				Category:    "consulting",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidCategory(err))
			assert.Equal(t, businessflow.CodeValidationError, businessflow.ErrorCode(err))
		})

		t.Run("CreateServiceDuplicateSlug", func(t *testing.T) {
			existing, err := fixtures.CreateTestService(models.ServiceCategoryIOT, models.ContentStatusPublished)
			require.NoError(t, err)

			_, err = flow.CreateService(ctx, &dto.ServiceCreate{
				Title:       "Copycat",
				Slug:        existing.Slug,
				Description: "Duplicate slug",
				Category:    "iot",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsSlugAlreadyExists(err))
		})

		t.Run("EmptyUpdateChangesNothing", func(t *testing.T) {
			service, err := fixtures.CreateTestService(models.ServiceCategoryBlockchain, models.ContentStatusPublished)
			require.NoError(t, err)

			item, err := flow.UpdateService(ctx, service.ID, &dto.ServiceUpdate{}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, service.Title, item.Title)
			assert.Equal(t, service.Category.String(), item.Category)
		})

		t.Run("GetServiceBySlugPublishedOnly", func(t *testing.T) {
			draft, err := fixtures.CreateTestService(models.ServiceCategoryDataAnalytics, models.ContentStatusDraft)
			require.NoError(t, err)

			item, err := flow.GetServiceBySlug(ctx, draft.Slug, false)
			require.NoError(t, err)
			assert.Equal(t, draft.ID, item.ID)

			_, err = flow.GetServiceBySlug(ctx, draft.Slug, true)
			require.Error(t, err)
			assert.True(t, businessflow.IsServiceNotFound(err))
		})

		t.Run("ListServicesByCategory", func(t *testing.T) {
			_, err := fixtures.CreateTestService(models.ServiceCategoryRiskPlanning, models.ContentStatusPublished)
			require.NoError(t, err)

			resp, err := flow.ListServices(ctx, &dto.ListServicesRequest{
				Category: utils.ToPtr("risk_planning"),
			}, true)
			require.NoError(t, err)
			require.NotEmpty(t, resp.Items)
			for _, item := range resp.Items {
				assert.Equal(t, "risk_planning", item.Category)
			}
		})

		t.Run("DeleteService", func(t *testing.T) {
			service, err := fixtures.CreateTestService(models.ServiceCategoryGrowthStrategy, models.ContentStatusDraft)
			require.NoError(t, err)

			require.NoError(t, flow.DeleteService(ctx, service.ID))

			err = flow.DeleteService(ctx, service.ID)
			require.Error(t, err)
			assert.True(t, businessflow.IsServiceNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}
