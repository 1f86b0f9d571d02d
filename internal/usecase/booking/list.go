package booking

import (
	"context"

	domain "github.com/yrfilms/studio-backend/internal/domain/booking"
	"github.com/yrfilms/studio-backend/internal/models"
)

type ListInquiries struct {
	repo domain.Repository
}

func NewListInquiries(repo domain.Repository) *ListInquiries {
	return &ListInquiries{repo: repo}
}

// Execute lists inquiries newest first. An unknown status value is passed
// through unchanged and simply matches nothing.
func (uc *ListInquiries) Execute(
	ctx context.Context,
	status string,
) ([]models.Booking, error) {
	return uc.repo.List(ctx, status)
}
