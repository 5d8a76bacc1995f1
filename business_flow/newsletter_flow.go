package businessflow

import (
	"context"
	"strings"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterFlow defines operations for mailing-list entries
type NewsletterFlow interface {
	Subscribe(ctx context.Context, req *dto.NewsletterSubscriberCreate, metadata *ClientMetadata) (*dto.SubscribeResponse, error)
	VerifySubscription(ctx context.Context, token string) (*dto.NewsletterSubscriberItem, error)
	Unsubscribe(ctx context.Context, email string) (*dto.NewsletterSubscriberItem, error)
	ListSubscribers(ctx context.Context, req *dto.ListRequest, activeOnly bool) (*dto.ListSubscribersResponse, error)
}

// NewsletterFlowImpl implements NewsletterFlow
type NewsletterFlowImpl struct {
	subscriberRepo repository.NewsletterSubscriberRepository
	db             *gorm.DB
}

// NewNewsletterFlow creates a new newsletter flow
func NewNewsletterFlow(subscriberRepo repository.NewsletterSubscriberRepository, db *gorm.DB) NewsletterFlow {
	return &NewsletterFlowImpl{
		subscriberRepo: subscriberRepo,
		db:             db,
	}
}

func (f *NewsletterFlowImpl) Subscribe(ctx context.Context, req *dto.NewsletterSubscriberCreate, metadata *ClientMetadata) (*dto.SubscribeResponse, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ipAddress, userAgent := clientNetwork(metadata)

	return runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.SubscribeResponse, error) {
		existing, err := f.subscriberRepo.ByEmail(ctx, email)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			if existing.IsSubscribed() {
				return nil, NewConflictError("email already subscribed", ErrAlreadySubscribed)
			}

			// A previously unsubscribed address is reactivated in place.
			existing.Name = req.Name
			existing.IsActive = utils.ToPtr(true)
			existing.UnsubscribedAt = nil
			existing.SubscribedAt = utils.UTCNow()
			existing.VerificationToken = newVerificationToken()
			existing.IsVerified = utils.ToPtr(false)
			if req.Interests != nil {
				existing.Interests = models.StringList(req.Interests)
			}
			existing.IPAddress = ipAddress
			existing.UserAgent = userAgent

			if err := f.subscriberRepo.Update(ctx, existing); err != nil {
				return nil, err
			}

			return &dto.SubscribeResponse{
				Message:    "Subscription reactivated",
				Subscriber: *ToNewsletterSubscriberItem(existing),
			}, nil
		}

		subscriber := models.NewsletterSubscriber{
			Email:             email,
			Name:              req.Name,
			VerificationToken: newVerificationToken(),
			Interests:         models.StringList(req.Interests),
			IPAddress:         ipAddress,
			UserAgent:         userAgent,
		}

		if err := f.subscriberRepo.Save(ctx, &subscriber); err != nil {
			if repository.IsDuplicate(err) {
				return nil, NewConflictError("email already subscribed", ErrAlreadySubscribed)
			}
			return nil, err
		}

		return &dto.SubscribeResponse{
			Message:    "Subscribed successfully",
			Subscriber: *ToNewsletterSubscriberItem(&subscriber),
		}, nil
	})
}

func (f *NewsletterFlowImpl) VerifySubscription(ctx context.Context, token string) (*dto.NewsletterSubscriberItem, error) {
	if token == "" {
		return nil, NewValidationError("verification token is required", ErrInvalidVerificationToken)
	}

	subscriber, err := f.subscriberRepo.ByVerificationToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, NewNotFoundError("invalid verification token", ErrInvalidVerificationToken)
	}
	if utils.IsTrue(subscriber.IsVerified) {
		return nil, NewConflictError("subscriber already verified", ErrSubscriberAlreadyVerified)
	}

	subscriber.IsVerified = utils.ToPtr(true)
	subscriber.VerificationToken = ""

	if err := f.subscriberRepo.Update(ctx, subscriber); err != nil {
		return nil, err
	}

	return ToNewsletterSubscriberItem(subscriber), nil
}

func (f *NewsletterFlowImpl) Unsubscribe(ctx context.Context, email string) (*dto.NewsletterSubscriberItem, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	subscriber, err := f.subscriberRepo.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, NewNotFoundError("subscriber not found", ErrSubscriberNotFound)
	}

	if subscriber.IsSubscribed() {
		subscriber.IsActive = utils.ToPtr(false)
		subscriber.UnsubscribedAt = utils.UTCNowPtr()

		if err := f.subscriberRepo.Update(ctx, subscriber); err != nil {
			return nil, err
		}
	}

	return ToNewsletterSubscriberItem(subscriber), nil
}

func (f *NewsletterFlowImpl) ListSubscribers(ctx context.Context, req *dto.ListRequest, activeOnly bool) (*dto.ListSubscribersResponse, error) {
	if req == nil {
		req = &dto.ListRequest{}
	}

	filter := models.NewsletterSubscriberFilter{}
	if activeOnly {
		filter.IsActive = utils.ToPtr(true)
	}

	subscribers, err := f.subscriberRepo.ByFilter(ctx, filter, "subscribed_at DESC, id DESC", req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	total, err := f.subscriberRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NewsletterSubscriberItem, 0, len(subscribers))
	for _, subscriber := range subscribers {
		items = append(items, *ToNewsletterSubscriberItem(subscriber))
	}

	return &dto.ListSubscribersResponse{
		Message: "Subscribers retrieved",
		Items:   items,
		Total:   total,
	}, nil
}

func newVerificationToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// ToNewsletterSubscriberItem converts a subscriber model to its API representation
func ToNewsletterSubscriberItem(subscriber *models.NewsletterSubscriber) *dto.NewsletterSubscriberItem {
	return &dto.NewsletterSubscriberItem{
		ID:             subscriber.ID,
		Email:          subscriber.Email,
		Name:           subscriber.Name,
		IsActive:       utils.IsTrue(subscriber.IsActive),
		IsVerified:     utils.IsTrue(subscriber.IsVerified),
		Interests:      subscriber.Interests,
		Source:         subscriber.Source,
		SubscribedAt:   formatTime(subscriber.SubscribedAt),
		UnsubscribedAt: formatTimePtr(subscriber.UnsubscribedAt),
	}
}
