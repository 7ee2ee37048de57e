package usecase

import (
	"context"
	"fmt"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"
)

// ContentService serves FAQ content and accepts contact messages.
// Both live in the document store; the identity router plays no part
// here.
type ContentService struct {
	faqs     repository.FAQRepository
	messages repository.ContactMessageRepository
	logger   logger.Logger
}

// NewContentService creates a new content service
func NewContentService(
	faqs repository.FAQRepository,
	messages repository.ContactMessageRepository,
	log logger.Logger,
) *ContentService {
	return &ContentService{
		faqs:     faqs,
		messages: messages,
		logger:   log,
	}
}

// FAQByCategory returns all FAQ entries grouped by category.
func (s *ContentService) FAQByCategory(ctx context.Context) (map[string][]entity.FAQ, error) {
	faqs, err := s.faqs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]entity.FAQ)
	for _, faq := range faqs {
		grouped[faq.Category] = append(grouped[faq.Category], faq)
	}
	return grouped, nil
}

// SubmitContact appends a contact message.
func (s *ContentService) SubmitContact(ctx context.Context, msg *entity.ContactMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		return fmt.Errorf("name, email and body are required: %w", apperrors.ErrValidation)
	}

	if err := s.messages.Insert(ctx, msg); err != nil {
		return err
	}
	s.logger.Info("Contact message received", "email", msg.Email)
	return nil
}
