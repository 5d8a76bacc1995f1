// Package tests contains test cases for business flows
package tests

import (
	"bytes"
	"testing"

	"github.com/gmwtech/corporate-site/app/dto"
	businessflow "github.com/gmwtech/corporate-site/business_flow"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	testingutil "github.com/gmwtech/corporate-site/testing"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestContactInquiryFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		inquiryRepo := repository.NewContactInquiryRepository(testDB.DB)
		flow := businessflow.NewContactInquiryFlow(inquiryRepo, testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("SubmitInquiryRecordsClient", func(t *testing.T) {
			item, err := flow.SubmitInquiry(ctx, &dto.ContactInquiryCreate{
				Name:    "Jane Prospect",
				Email:   "jane.prospect@example.com",
				Subject: "IoT rollout",
				Message: "We would like a quote.",
			}, testClientMetadata())
			require.NoError(t, err)
			assert.NotZero(t, item.ID)
			assert.Equal(t, "new", item.Status)
			assert.Equal(t, models.InquiryPriorityMedium, item.Priority)
			assert.Equal(t, utils.DefaultInquirySource, item.Source)

			stored, err := inquiryRepo.ByID(ctx, item.ID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, "127.0.0.1", stored.IPAddress)
			assert.Equal(t, "Test User Agent", stored.UserAgent)
		})

		t.Run("StatusTransitionStampsRespondedAt", func(t *testing.T) {
			inquiry, err := fixtures.CreateTestInquiry(models.InquiryStatusNew)
			require.NoError(t, err)
			require.Nil(t, inquiry.RespondedAt)

			item, err := flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				Status: utils.ToPtr("in_progress"),
			}, testClientMetadata())
			require.NoError(t, err)
			assert.Equal(t, "in_progress", item.Status)
			require.NotNil(t, item.RespondedAt)
			firstResponded := *item.RespondedAt

			// later transitions keep the first response time
			item, err = flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				Status: utils.ToPtr("resolved"),
			}, testClientMetadata())
			require.NoError(t, err)
			require.NotNil(t, item.RespondedAt)
			assert.Equal(t, firstResponded, *item.RespondedAt)
		})

		t.Run("BackwardTransitionBlocked", func(t *testing.T) {
			inquiry, err := fixtures.CreateTestInquiry(models.InquiryStatusResolved)
			require.NoError(t, err)

			_, err = flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				Status: utils.ToPtr("new"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsStatusTransitionBlocked(err))
			assert.Equal(t, businessflow.CodeValidationError, businessflow.ErrorCode(err))

			// status is unchanged
			stored, err := inquiryRepo.ByID(ctx, inquiry.ID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, models.InquiryStatusResolved, stored.Status)
		})

		t.Run("LeadScoreBounds", func(t *testing.T) {
			inquiry, err := fixtures.CreateTestInquiry(models.InquiryStatusNew)
			require.NoError(t, err)

			item, err := flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				LeadScore: utils.ToPtr("85.50"),
			}, testClientMetadata())
			require.NoError(t, err)
			require.NotNil(t, item.LeadScore)
			assert.Equal(t, "85.5", *item.LeadScore)

			// the score survives a fresh read at declared precision
			stored, err := inquiryRepo.ByID(ctx, inquiry.ID)
			require.NoError(t, err)
			require.NotNil(t, stored)
			require.NotNil(t, stored.LeadScore)
			assert.Equal(t, "85.5", stored.LeadScore.String())

			_, err = flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				LeadScore: utils.ToPtr("-1"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsLeadScoreOutOfRange(err))

			_, err = flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				LeadScore: utils.ToPtr("1000"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsLeadScoreOutOfRange(err))

			_, err = flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				LeadScore: utils.ToPtr("10.123"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsLeadScoreOutOfRange(err))

			_, err = flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				LeadScore: utils.ToPtr("not-a-number"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidLeadScore(err))
		})

		t.Run("InvalidPriorityRejected", func(t *testing.T) {
			inquiry, err := fixtures.CreateTestInquiry(models.InquiryStatusNew)
			require.NoError(t, err)

			_, err = flow.UpdateInquiry(ctx, inquiry.ID, &dto.ContactInquiryUpdate{
				Priority: utils.ToPtr("critical"),
			}, testClientMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidPriority(err))
		})

		t.Run("ListByStatus", func(t *testing.T) {
			_, err := fixtures.CreateTestInquiry(models.InquiryStatusClosed)
			require.NoError(t, err)

			resp, err := flow.ListInquiries(ctx, &dto.ListContactInquiriesRequest{
				Status: utils.ToPtr("closed"),
			})
			require.NoError(t, err)
			require.NotEmpty(t, resp.Items)
			for _, item := range resp.Items {
				assert.Equal(t, "closed", item.Status)
			}
		})

		t.Run("ExportInquiriesProducesWorkbook", func(t *testing.T) {
			_, err := fixtures.CreateTestInquiry(models.InquiryStatusNew)
			require.NoError(t, err)

			payload, err := flow.ExportInquiries(ctx, &dto.ListContactInquiriesRequest{})
			require.NoError(t, err)
			require.NotEmpty(t, payload)

			book, err := excelize.OpenReader(bytes.NewReader(payload))
			require.NoError(t, err)
			defer book.Close()

			rows, err := book.GetRows("Inquiries")
			require.NoError(t, err)
			require.NotEmpty(t, rows)
			assert.Equal(t, "ID", rows[0][0])
			assert.Equal(t, "Email", rows[0][2])
			assert.GreaterOrEqual(t, len(rows), 2)
		})

		return nil
	})
	require.NoError(t, err)
}
