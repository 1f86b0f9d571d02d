package booking

import (
	"context"

	"github.com/yrfilms/studio-backend/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// List returns bookings newest first, filtered by status when
	// status is non-empty.
	List(
		ctx context.Context,
		status string,
	) ([]models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	Delete(
		ctx context.Context,
		b *models.Booking,
	) error
}
