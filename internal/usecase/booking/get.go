package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/yrfilms/studio-backend/internal/domain/booking"
	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/models"
)

type GetInquiry struct {
	repo domain.Repository
}

func NewGetInquiry(repo domain.Repository) *GetInquiry {
	return &GetInquiry{repo: repo}
}

func (uc *GetInquiry) Execute(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}
	return b, nil
}
