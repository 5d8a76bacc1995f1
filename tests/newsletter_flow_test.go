// Package tests contains test cases for business flows
package tests

import (
	"testing"

	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/gmwtech/corporate-site/repository"
	testingutil "github.com/gmwtech/corporate-site/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		subscriberRepo := repository.NewNewsletterSubscriberRepository(testDB.DB)
		flow := businessflow.NewNewsletterFlow(subscriberRepo, testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("SubscribeNormalizesEmail", func(t *testing.T) {
			resp, err := flow.Subscribe(ctx, &dto.NewsletterSubscriberCreate{
				Email: "  Reader@Example.COM ",
				Name:  "Reader",
			}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, "reader@example.com", resp.Subscriber.Email)
			assert.True(t, resp.Subscriber.IsActive)
			assert.False(t, resp.Subscriber.IsVerified)

			stored, err := subscriberRepo.ByEmail(ctx, "reader@example.com")
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.NotEmpty(t, stored.VerificationToken)
		})

		t.Run("SubscribeDuplicateConflict", func(t *testing.T) {
			subscriber, err := fixtures.CreateTestSubscriber(true)
			require.NoError(t, err)

			_, err = flow.Subscribe(ctx, &dto.NewsletterSubscriberCreate{
				Email: subscriber.Email,
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsAlreadySubscribed(err))
			assert.Equal(t, businessflow.CodeConflict, businessflow.ErrorCode(err))
		})

		t.Run("VerifySubscription", func(t *testing.T) {
			subscriber, err := fixtures.CreateTestSubscriber(false)
			require.NoError(t, err)

			item, err := flow.VerifySubscription(ctx, subscriber.VerificationToken)
			require.NoError(t, err)
			assert.True(t, item.IsVerified)

			// the token is single-use
			_, err = flow.VerifySubscription(ctx, subscriber.VerificationToken)
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidVerificationToken(err))
		})

		t.Run("VerifyUnknownToken", func(t *testing.T) {
			_, err := flow.VerifySubscription(ctx, "bogus-token")
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidVerificationToken(err))
			assert.Equal(t, businessflow.CodeNotFound, businessflow.ErrorCode(err))
		})

		t.Run("UnsubscribeThenResubscribe", func(t *testing.T) {
			subscriber, err := fixtures.CreateTestSubscriber(true)
			require.NoError(t, err)

			item, err := flow.Unsubscribe(ctx, subscriber.Email)
			require.NoError(t, err)
			assert.False(t, item.IsActive)
			require.NotNil(t, item.UnsubscribedAt)

			// unsubscribing twice is a no-op
			item, err = flow.Unsubscribe(ctx, subscriber.Email)
			require.NoError(t, err)
			assert.False(t, item.IsActive)

			// resubscribing reactivates the same row
			resp, err := flow.Subscribe(ctx, &dto.NewsletterSubscriberCreate{
				Email: subscriber.Email,
				Name:  "Returning Reader",
			}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, subscriber.ID, resp.Subscriber.ID)
			assert.True(t, resp.Subscriber.IsActive)
			assert.False(t, resp.Subscriber.IsVerified)
			assert.Nil(t, resp.Subscriber.UnsubscribedAt)
		})

		t.Run("UnsubscribeUnknownEmail", func(t *testing.T) {
			_, err := flow.Unsubscribe(ctx, "ghost@example.com")
			require.Error(t, err)
			assert.True(t, businessflow.IsSubscriberNotFound(err))
		})

		t.Run("ListActiveOnly", func(t *testing.T) {
			resp, err := flow.ListSubscribers(ctx, &dto.ListRequest{}, true)
			require.NoError(t, err)
			for _, item := range resp.Items {
				assert.True(t, item.IsActive)
			}
		})

		return nil
	})
	require.NoError(t, err)
}
