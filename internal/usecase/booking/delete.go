package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/yrfilms/studio-backend/internal/domain/booking"
	"github.com/yrfilms/studio-backend/internal/httperr"
)

type DeleteInquiry struct {
	repo domain.Repository
}

func NewDeleteInquiry(repo domain.Repository) *DeleteInquiry {
	return &DeleteInquiry{repo: repo}
}

func (uc *DeleteInquiry) Execute(
	ctx context.Context,
	id uint,
) error {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	return uc.repo.Delete(ctx, b)
}
