package usecase

import (
	"context"
	"testing"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFAQRepo struct {
	faqs []entity.FAQ
}

func (f *fakeFAQRepo) ListAll(context.Context) ([]entity.FAQ, error) {
	return f.faqs, nil
}

func (f *fakeFAQRepo) Upsert(_ context.Context, faq *entity.FAQ) error {
	f.faqs = append(f.faqs, *faq)
	return nil
}

type fakeMessageRepo struct {
	messages []entity.ContactMessage
}

func (f *fakeMessageRepo) Insert(_ context.Context, msg *entity.ContactMessage) error {
	f.messages = append(f.messages, *msg)
	return nil
}

func TestFAQByCategory(t *testing.T) {
	faqs := &fakeFAQRepo{faqs: []entity.FAQ{
		{Category: "Flight", Question: "Change your flight", Answer: "Use Manage Booking."},
		{Category: "Flight", Question: "Airline schedule change", Answer: "You will get an email."},
		{Category: "Refunds", Question: "Refund timelines", Answer: "7-10 business days."},
	}}
	svc := NewContentService(faqs, &fakeMessageRepo{}, logger.NewNop())

	grouped, err := svc.FAQByCategory(context.Background())
	require.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["Flight"], 2)
	assert.Len(t, grouped["Refunds"], 1)
}

func TestSubmitContact(t *testing.T) {
	messages := &fakeMessageRepo{}
	svc := NewContentService(&fakeFAQRepo{}, messages, logger.NewNop())

	err := svc.SubmitContact(context.Background(), &entity.ContactMessage{
		Name: "Alice", Email: "alice@example.com", Body: "Hello",
	})
	require.NoError(t, err)
	require.Len(t, messages.messages, 1)
	assert.Equal(t, "alice@example.com", messages.messages[0].Email)
}

func TestSubmitContactValidation(t *testing.T) {
	messages := &fakeMessageRepo{}
	svc := NewContentService(&fakeFAQRepo{}, messages, logger.NewNop())

	err := svc.SubmitContact(context.Background(), &entity.ContactMessage{Name: "Alice"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, messages.messages)
}
