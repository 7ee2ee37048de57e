package repository

import (
	"context"

	"offbeat-travels/internal/domain/entity"
)

// FAQRepository reads the faq collection. Unsharded; lives in the
// document store, independent of the identity router.
type FAQRepository interface {
	ListAll(ctx context.Context) ([]entity.FAQ, error)
	// Upsert keyed by (category, question); used by the seed command.
	Upsert(ctx context.Context, faq *entity.FAQ) error
}

// ContactMessageRepository appends contact form submissions. The
// messages collection is write-only from the application's side.
type ContactMessageRepository interface {
	Insert(ctx context.Context, msg *entity.ContactMessage) error
}
