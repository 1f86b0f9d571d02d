package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/yrfilms/studio-backend/internal/domain/booking"
	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Nil fields are left untouched on the stored inquiry.
type UpdateInquiryInput struct {
	Name          *string
	Email         *string
	Phone         *string
	Service       *string
	PreferredDate *string
	Message       *string
	Status        *string
	Notes         *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateInquiry struct {
	repo domain.Repository
}

func NewUpdateInquiry(repo domain.Repository) *UpdateInquiry {
	return &UpdateInquiry{repo: repo}
}

func (uc *UpdateInquiry) Execute(
	ctx context.Context,
	id uint,
	in UpdateInquiryInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if in.Status != nil && !domain.IsValid(domain.Status(*in.Status)) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Email != nil {
		b.Email = *in.Email
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.Service != nil {
		b.Service = *in.Service
	}
	if in.PreferredDate != nil {
		b.PreferredDate = *in.PreferredDate
	}
	if in.Message != nil {
		b.Message = *in.Message
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
