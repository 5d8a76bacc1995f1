// Package tests contains test cases for business flows
package tests

import (
	"testing"

	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/gmwtech/corporate-site/repository"
	testingutil "github.com/gmwtech/corporate-site/testing"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyInfoFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		companyRepo := repository.NewCompanyInfoRepository(testDB.DB)
		flow := businessflow.NewCompanyInfoFlow(companyRepo, testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("GetBeforeFirstUpdate", func(t *testing.T) {
			_, err := flow.GetCompanyInfo(ctx)
			require.Error(t, err)
			assert.True(t, businessflow.IsCompanyProfileNotFound(err))
		})

		t.Run("FirstUpdateCreatesProfile", func(t *testing.T) {
			resp, err := flow.UpdateCompanyInfo(ctx, &dto.CompanyInfoUpdate{
				CompanyName:  utils.ToPtr("GMW Tech Group"),
				Tagline:      utils.ToPtr("Engineering the future"),
				PrimaryEmail: utils.ToPtr("info@gmw.tech"),
				Latitude:     utils.ToPtr("35.689198"),
				Longitude:    utils.ToPtr("51.388973"),
			}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, "GMW Tech Group", resp.Info.CompanyName)
			require.NotNil(t, resp.Info.Latitude)
			assert.Equal(t, "35.689198", *resp.Info.Latitude)
		})

		t.Run("PartialUpdateKeepsOtherFields", func(t *testing.T) {
			resp, err := flow.UpdateCompanyInfo(ctx, &dto.CompanyInfoUpdate{
				Mission: utils.ToPtr("Build technology that lasts"),
			}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, "Build technology that lasts", resp.Info.Mission)
			assert.Equal(t, "GMW Tech Group", resp.Info.CompanyName)
			assert.Equal(t, "Engineering the future", resp.Info.Tagline)
		})

		t.Run("SingleRowIsKept", func(t *testing.T) {
			_, err := flow.UpdateCompanyInfo(ctx, &dto.CompanyInfoUpdate{
				City: utils.ToPtr("Tehran"),
			}, testClientMetadata())
			require.NoError(t, err)

			var count int64
			require.NoError(t, testDB.DB.Table("company_info").Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})

		t.Run("CoordinateBounds", func(t *testing.T) {
			_, err := flow.UpdateCompanyInfo(ctx, &dto.CompanyInfoUpdate{
				Latitude: utils.ToPtr("91"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidCoordinates(err))

			_, err = flow.UpdateCompanyInfo(ctx, &dto.CompanyInfoUpdate{
				Longitude: utils.ToPtr("-180.5"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidCoordinates(err))

			_, err = flow.UpdateCompanyInfo(ctx, &dto.CompanyInfoUpdate{
				Latitude: utils.ToPtr("north"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidCoordinates(err))
		})

		t.Run("GetReturnsProfile", func(t *testing.T) {
			resp, err := flow.GetCompanyInfo(ctx)
			require.NoError(t, err)
			assert.Equal(t, "GMW Tech Group", resp.Info.CompanyName)
			assert.Equal(t, "Tehran", resp.Info.City)
		})

		return nil
	})
	require.NoError(t, err)
}
