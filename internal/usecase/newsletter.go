package usecase

import (
	"context"
	"time"

	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/logging"
)

type NewsletterService struct {
	store SubscriberStore
	now   func() time.Time
}

func NewNewsletterService(store SubscriberStore) *NewsletterService {
	return &NewsletterService{store: store, now: time.Now}
}

// Subscribe validates email and stores it. It returns core.ErrInvalidEmail
// or core.ErrAlreadySubscribed for the caller to map to a response.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (core.Subscriber, error) {
	normalized, err := core.NormalizeEmail(email)
	if err != nil {
		return core.Subscriber{}, err
	}

	sub := core.Subscriber{Email: normalized, SubscribedAt: s.now().UTC()}
	if err := s.store.Add(ctx, sub); err != nil {
		return core.Subscriber{}, err
	}

	logging.FromContext(ctx).Info("newsletter subscription", "email", normalized)
	return sub, nil
}
