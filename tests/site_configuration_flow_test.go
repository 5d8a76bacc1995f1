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

func TestSiteConfigurationFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		configRepo := repository.NewSiteConfigurationRepository(testDB.DB)
		// nil cache client disables Redis; the flow must work without it
		flow := businessflow.NewSiteConfigurationFlow(configRepo, nil, testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("CreateSettingDefaults", func(t *testing.T) {
			item, err := flow.CreateSetting(ctx, &dto.SiteConfigurationCreate{
				Key:   "site_title",
				Value: "GMW Tech Group",
			}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, "string", item.ValueType)
			assert.Equal(t, "general", item.Category)
			assert.False(t, item.IsPublic)
		})

		t.Run("CreateSettingValidatesValueType", func(t *testing.T) {
			_, err := flow.CreateSetting(ctx, &dto.SiteConfigurationCreate{
				Key:       "bad_type",
				Value:     "1.5",
				ValueType: "float",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidValueType(err))

			_, err = flow.CreateSetting(ctx, &dto.SiteConfigurationCreate{
				Key:       "bad_int",
				Value:     "not-a-number",
				ValueType: "int",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidConfigValue(err))

			_, err = flow.CreateSetting(ctx, &dto.SiteConfigurationCreate{
				Key:       "bad_json",
				Value:     "{broken",
				ValueType: "json",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidConfigValue(err))
		})

		t.Run("CreateSettingDuplicateKey", func(t *testing.T) {
			setting, err := fixtures.CreateTestSetting(false)
			require.NoError(t, err)

			_, err = flow.CreateSetting(ctx, &dto.SiteConfigurationCreate{
				Key:   setting.Key,
				Value: "other",
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsConfigKeyAlreadyExists(err))
			assert.Equal(t, businessflow.CodeConflict, businessflow.ErrorCode(err))
		})

		t.Run("UpdateSettingRevalidatesValue", func(t *testing.T) {
			item, err := flow.CreateSetting(ctx, &dto.SiteConfigurationCreate{
				Key:       "max_upload_mb",
				Value:     "25",
				ValueType: "int",
			}, testClientMetadata())
			require.NoError(t, err)

			// changing the value alone is checked against the stored type
			_, err = flow.UpdateSetting(ctx, item.Key, &dto.SiteConfigurationUpdate{
				Value: utils.ToPtr("not-a-number"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidConfigValue(err))

			updated, err := flow.UpdateSetting(ctx, item.Key, &dto.SiteConfigurationUpdate{
				Value: utils.ToPtr("50"),
			}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, "50", updated.Value)
		})

		t.Run("PublicConfigFiltersPrivateKeys", func(t *testing.T) {
			public, err := fixtures.CreateTestSetting(true)
			require.NoError(t, err)
			private, err := fixtures.CreateTestSetting(false)
			require.NoError(t, err)

			resp, err := flow.PublicConfig(ctx)
			require.NoError(t, err)
			assert.Contains(t, resp.Config, public.Key)
			assert.NotContains(t, resp.Config, private.Key)
		})

		t.Run("DeleteSetting", func(t *testing.T) {
			setting, err := fixtures.CreateTestSetting(false)
			require.NoError(t, err)

			require.NoError(t, flow.DeleteSetting(ctx, setting.Key))

			err = flow.DeleteSetting(ctx, setting.Key)
			require.Error(t, err)
			assert.True(t, businessflow.IsConfigurationNotFound(err))
		})

		t.Run("ListByCategory", func(t *testing.T) {
			resp, err := flow.ListSettings(ctx, utils.ToPtr("general"))
			require.NoError(t, err)
			for _, item := range resp.Items {
				assert.Equal(t, "general", item.Category)
			}
		})

		return nil
	})
	require.NoError(t, err)
}
