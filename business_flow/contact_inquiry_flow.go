package businessflow

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// maxLeadScore is the largest value a decimal(5,2) column can hold
var maxLeadScore = decimal.New(1000, 0)

// ContactInquiryFlow defines operations for inbound leads
type ContactInquiryFlow interface {
	SubmitInquiry(ctx context.Context, req *dto.ContactInquiryCreate, metadata *ClientMetadata) (*dto.ContactInquiryItem, error)
	UpdateInquiry(ctx context.Context, id uint, req *dto.ContactInquiryUpdate, metadata *ClientMetadata) (*dto.ContactInquiryItem, error)
	GetInquiry(ctx context.Context, id uint) (*dto.ContactInquiryItem, error)
	ListInquiries(ctx context.Context, req *dto.ListContactInquiriesRequest) (*dto.ListContactInquiriesResponse, error)
	ExportInquiries(ctx context.Context, req *dto.ListContactInquiriesRequest) ([]byte, error)
}

// ContactInquiryFlowImpl implements ContactInquiryFlow
type ContactInquiryFlowImpl struct {
	inquiryRepo repository.ContactInquiryRepository
	db          *gorm.DB
}

// NewContactInquiryFlow creates a new contact inquiry flow
func NewContactInquiryFlow(inquiryRepo repository.ContactInquiryRepository, db *gorm.DB) ContactInquiryFlow {
	return &ContactInquiryFlowImpl{
		inquiryRepo: inquiryRepo,
		db:          db,
	}
}

func (f *ContactInquiryFlowImpl) SubmitInquiry(ctx context.Context, req *dto.ContactInquiryCreate, metadata *ClientMetadata) (*dto.ContactInquiryItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	ipAddress, userAgent := clientNetwork(metadata)

	inquiry := models.ContactInquiry{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Company:            req.Company,
		Subject:            req.Subject,
		Message:            req.Message,
		ServiceInterest:    req.ServiceInterest,
		SubsidiaryInterest: req.SubsidiaryInterest,
		IPAddress:          ipAddress,
		UserAgent:          userAgent,
	}

	if err := f.inquiryRepo.Save(ctx, &inquiry); err != nil {
		return nil, err
	}

	return ToContactInquiryItem(&inquiry), nil
}

func (f *ContactInquiryFlowImpl) UpdateInquiry(ctx context.Context, id uint, req *dto.ContactInquiryUpdate, metadata *ClientMetadata) (*dto.ContactInquiryItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	if req.Priority != nil && !models.ValidInquiryPriority(*req.Priority) {
		return nil, NewValidationError("invalid inquiry priority", ErrInvalidPriority)
	}
	if req.Status != nil && !models.InquiryStatus(*req.Status).Valid() {
		return nil, NewValidationError("invalid inquiry status", ErrInvalidInquiryStatus)
	}

	var leadScore *decimal.Decimal
	if req.LeadScore != nil {
		score, err := decimal.NewFromString(*req.LeadScore)
		if err != nil {
			return nil, NewValidationError("lead score is not a valid decimal", ErrInvalidLeadScore)
		}
		if score.IsNegative() || score.GreaterThanOrEqual(maxLeadScore) || score.Exponent() < -2 {
			return nil, NewValidationError("lead score is out of range", ErrLeadScoreOutOfRange)
		}
		leadScore = &score
	}

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.ContactInquiryItem, error) {
		inquiry, err := f.inquiryRepo.ByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if inquiry == nil {
			return nil, NewNotFoundError("contact inquiry not found", ErrInquiryNotFound)
		}

		if req.Status != nil {
			next := models.InquiryStatus(*req.Status)
			if !inquiry.Status.CanTransitionTo(next) {
				return nil, NewValidationError(
					fmt.Sprintf("cannot move inquiry from %s to %s", inquiry.Status, next),
					ErrStatusTransitionBlocked,
				)
			}
			// Leaving the initial status records when the inquiry was first handled.
			if inquiry.Status == models.InquiryStatusNew && next != models.InquiryStatusNew && inquiry.RespondedAt == nil {
				inquiry.RespondedAt = utils.UTCNowPtr()
			}
			inquiry.Status = next
		}
		if req.Priority != nil {
			inquiry.Priority = *req.Priority
		}
		if leadScore != nil {
			inquiry.LeadScore = leadScore
		}
		if req.Notes != nil {
			inquiry.Notes = *req.Notes
		}

		if err := f.inquiryRepo.Update(ctx, inquiry); err != nil {
			return nil, err
		}

		return ToContactInquiryItem(inquiry), nil
	})
}

func (f *ContactInquiryFlowImpl) GetInquiry(ctx context.Context, id uint) (*dto.ContactInquiryItem, error) {
	inquiry, err := f.inquiryRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, NewNotFoundError("contact inquiry not found", ErrInquiryNotFound)
	}
	return ToContactInquiryItem(inquiry), nil
}

func (f *ContactInquiryFlowImpl) ListInquiries(ctx context.Context, req *dto.ListContactInquiriesRequest) (*dto.ListContactInquiriesResponse, error) {
	if req == nil {
		req = &dto.ListContactInquiriesRequest{}
	}
	filter, err := inquiryFilter(req)
	if err != nil {
		return nil, err
	}

	inquiries, err := f.inquiryRepo.ByFilter(ctx, *filter, "created_at DESC, id DESC", req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := f.inquiryRepo.Count(ctx, *filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContactInquiryItem, 0, len(inquiries))
	for _, inquiry := range inquiries {
		items = append(items, *ToContactInquiryItem(inquiry))
	}

	return &dto.ListContactInquiriesResponse{
		Message: "Contact inquiries retrieved",
		Items:   items,
		Total:   total,
	}, nil
}

// ExportInquiries renders matching inquiries as an xlsx workbook
func (f *ContactInquiryFlowImpl) ExportInquiries(ctx context.Context, req *dto.ListContactInquiriesRequest) ([]byte, error) {
	filter, err := inquiryFilter(req)
	if err != nil {
		return nil, err
	}

	inquiries, err := f.inquiryRepo.ByFilter(ctx, *filter, "created_at DESC, id DESC", 0, 0)
	if err != nil {
		return nil, err
	}

	book := excelize.NewFile()
	defer book.Close()

	const sheet = "Inquiries"
	index, err := book.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	book.SetActiveSheet(index)
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"ID", "Name", "Email", "Phone", "Company", "Subject", "Message",
		"Service Interest", "Subsidiary Interest", "Status", "Priority",
		"Source", "Lead Score", "Notes", "Responded At", "Created At",
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := book.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, inquiry := range inquiries {
		values := []any{
			inquiry.ID,
			inquiry.Name,
			inquiry.Email,
			inquiry.Phone,
			inquiry.Company,
			inquiry.Subject,
			inquiry.Message,
			utils.StringOrEmpty(inquiry.ServiceInterest),
			utils.StringOrEmpty(inquiry.SubsidiaryInterest),
			inquiry.Status.String(),
			inquiry.Priority,
			inquiry.Source,
			"",
			inquiry.Notes,
			"",
			formatTime(inquiry.CreatedAt),
		}
		if inquiry.LeadScore != nil {
			values[12] = inquiry.LeadScore.String()
		}
		if inquiry.RespondedAt != nil {
			values[14] = formatTime(*inquiry.RespondedAt)
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := book.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inquiryFilter(req *dto.ListContactInquiriesRequest) (*models.ContactInquiryFilter, error) {
	if req == nil {
		return &models.ContactInquiryFilter{}, nil
	}

	filter := models.ContactInquiryFilter{
		Email: req.Email,
	}
	if req.Status != nil {
		status := models.InquiryStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("invalid inquiry status", ErrInvalidInquiryStatus)
		}
		filter.Status = &status
	}
	if req.Priority != nil {
		if !models.ValidInquiryPriority(*req.Priority) {
			return nil, NewValidationError("invalid inquiry priority", ErrInvalidPriority)
		}
		filter.Priority = req.Priority
	}
	return &filter, nil
}

// ToContactInquiryItem converts an inquiry model to its API representation
func ToContactInquiryItem(inquiry *models.ContactInquiry) *dto.ContactInquiryItem {
	return &dto.ContactInquiryItem{
		ID:                 inquiry.ID,
		Name:               inquiry.Name,
		Email:              inquiry.Email,
		Phone:              inquiry.Phone,
		Company:            inquiry.Company,
		Subject:            inquiry.Subject,
		Message:            inquiry.Message,
		ServiceInterest:    inquiry.ServiceInterest,
		SubsidiaryInterest: inquiry.SubsidiaryInterest,
		Status:             inquiry.Status.String(),
		Priority:           inquiry.Priority,
		Source:             inquiry.Source,
		LeadScore:          decimalPtrString(inquiry.LeadScore),
		Notes:              inquiry.Notes,
		RespondedAt:        formatTimePtr(inquiry.RespondedAt),
		CreatedAt:          formatTime(inquiry.CreatedAt),
		UpdatedAt:          formatTime(inquiry.UpdatedAt),
	}
}
