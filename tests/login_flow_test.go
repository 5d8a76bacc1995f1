// Package tests contains integration tests for staff login
package tests

import (
	"testing"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/app/services"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/gmwtech/corporate-site/repository"
	testingutil "github.com/gmwtech/corporate-site/testing"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-login-flow-tests-0123456789"

func TestLoginFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		userRepo := repository.NewUserRepository(testDB.DB)

		tokenService, err := services.NewTokenService(utils.AccessTokenTTL, utils.RefreshTokenTTL, "corporate-site", "corporate-site-api", testJWTSecret)
		require.NoError(t, err)

		loginFlow := businessflow.NewLoginFlow(userRepo, tokenService)

		t.Run("SuccessfulLoginWithUsername", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			loginReq := &dto.LoginRequest{
				Identifier: user.Username,
				Password:   "TestPass123!",
			}

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), loginReq, testClientMetadata())
			require.NoError(t, err)
			require.NotNil(t, loginResult)
			assert.Equal(t, "Login successful", loginResult.Message)
			assert.NotEmpty(t, loginResult.AccessToken)
			assert.NotEmpty(t, loginResult.RefreshToken)
			assert.NotEqual(t, loginResult.AccessToken, loginResult.RefreshToken)
			assert.Equal(t, "Bearer", loginResult.TokenType)
			assert.Equal(t, int(utils.AccessTokenTTL.Seconds()), loginResult.ExpiresIn)

			assert.Equal(t, user.ID, loginResult.User.ID)
			assert.Equal(t, user.Username, loginResult.User.Username)
			assert.Equal(t, user.Email, loginResult.User.Email)
			assert.Equal(t, user.FullName, loginResult.User.FullName)
			assert.False(t, loginResult.User.IsAdmin)

			// Issued token must validate as an access token for the same account
			claims, err := tokenService.ValidateToken(loginResult.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, "access", claims.TokenType)
		})

		t.Run("SuccessfulLoginWithEmail", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(true)
			require.NoError(t, err)

			loginReq := &dto.LoginRequest{
				Identifier: user.Email,
				Password:   "TestPass123!",
			}

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), loginReq, testClientMetadata())
			require.NoError(t, err)
			require.NotNil(t, loginResult)
			assert.Equal(t, user.ID, loginResult.User.ID)
			assert.True(t, loginResult.User.IsAdmin)
		})

		t.Run("IncorrectPassword", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			loginReq := &dto.LoginRequest{
				Identifier: user.Username,
				Password:   "WrongPass123!",
			}

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), loginReq, testClientMetadata())
			require.Error(t, err)
			assert.Nil(t, loginResult)
			assert.True(t, businessflow.IsIncorrectPassword(err))
			assert.Equal(t, businessflow.CodeUnauthorized, businessflow.ErrorCode(err))
		})

		t.Run("UserNotFound", func(t *testing.T) {
			loginReq := &dto.LoginRequest{
				Identifier: "nonexistent@example.com",
				Password:   "TestPass123!",
			}

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), loginReq, testClientMetadata())
			require.Error(t, err)
			assert.Nil(t, loginResult)
			assert.True(t, businessflow.IsUserNotFound(err))
			assert.Equal(t, businessflow.CodeUnauthorized, businessflow.ErrorCode(err))
		})

		t.Run("InactiveAccount", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			err = testDB.DB.Model(user).Update("is_active", false).Error
			require.NoError(t, err)

			loginReq := &dto.LoginRequest{
				Identifier: user.Username,
				Password:   "TestPass123!",
			}

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), loginReq, testClientMetadata())
			require.Error(t, err)
			assert.Nil(t, loginResult)
			assert.True(t, businessflow.IsAccountInactive(err))
		})

		t.Run("RefreshIssuesNewTokenPair", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), &dto.LoginRequest{
				Identifier: user.Username,
				Password:   "TestPass123!",
			}, testClientMetadata())
			require.NoError(t, err)

			refreshResult, err := loginFlow.Refresh(testingutil.CreateTestContext(), &dto.RefreshRequest{
				RefreshToken: loginResult.RefreshToken,
			}, testClientMetadata())
			require.NoError(t, err)
			require.NotNil(t, refreshResult)
			assert.Equal(t, "Token refreshed", refreshResult.Message)
			assert.NotEmpty(t, refreshResult.AccessToken)
			assert.NotEmpty(t, refreshResult.RefreshToken)
			assert.Equal(t, user.ID, refreshResult.User.ID)

			claims, err := tokenService.ValidateToken(refreshResult.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, "access", claims.TokenType)
		})

		t.Run("RefreshRejectsAccessToken", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), &dto.LoginRequest{
				Identifier: user.Username,
				Password:   "TestPass123!",
			}, testClientMetadata())
			require.NoError(t, err)

			refreshResult, err := loginFlow.Refresh(testingutil.CreateTestContext(), &dto.RefreshRequest{
				RefreshToken: loginResult.AccessToken,
			}, testClientMetadata())
			require.Error(t, err)
			assert.Nil(t, refreshResult)
			assert.Equal(t, businessflow.CodeUnauthorized, businessflow.ErrorCode(err))
		})

		t.Run("RefreshRejectsInactiveAccount", func(t *testing.T) {
			user, err := fixtures.CreateTestUser(false)
			require.NoError(t, err)

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), &dto.LoginRequest{
				Identifier: user.Username,
				Password:   "TestPass123!",
			}, testClientMetadata())
			require.NoError(t, err)

			err = testDB.DB.Model(user).Update("is_active", false).Error
			require.NoError(t, err)

			refreshResult, err := loginFlow.Refresh(testingutil.CreateTestContext(), &dto.RefreshRequest{
				RefreshToken: loginResult.RefreshToken,
			}, testClientMetadata())
			require.Error(t, err)
			assert.Nil(t, refreshResult)
			assert.True(t, businessflow.IsAccountInactive(err))
		})

		t.Run("EmptyCredentials", func(t *testing.T) {
			loginReq := &dto.LoginRequest{
				Identifier: "   ",
				Password:   "",
			}

			loginResult, err := loginFlow.Login(testingutil.CreateTestContext(), loginReq, testClientMetadata())
			require.Error(t, err)
			assert.Nil(t, loginResult)
			assert.Equal(t, businessflow.CodeUnauthorized, businessflow.ErrorCode(err))
		})

		return nil
	})
	require.NoError(t, err)
}
