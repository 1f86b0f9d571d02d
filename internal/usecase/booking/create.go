package booking

import (
	"context"
	"strings"

	domain "github.com/yrfilms/studio-backend/internal/domain/booking"
	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/models"
	"github.com/yrfilms/studio-backend/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInquiryInput struct {
	Name          string
	Email         string
	Phone         string
	Service       string
	PreferredDate string
	Message       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateInquiry struct {
	repo domain.Repository
}

func NewCreateInquiry(repo domain.Repository) *CreateInquiry {
	return &CreateInquiry{repo: repo}
}

func (uc *CreateInquiry) Execute(
	ctx context.Context,
	in CreateInquiryInput,
) (*models.Booking, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	// Visitor-submitted inquiries always start as "new" with empty
	// admin notes, regardless of what the payload carried.
	b := &models.Booking{
		Name:          strings.TrimSpace(in.Name),
		Email:         email,
		Phone:         strings.TrimSpace(in.Phone),
		Service:       strings.TrimSpace(in.Service),
		PreferredDate: in.PreferredDate,
		Message:       in.Message,
		Status:        string(domain.InitialStatus()),
		Notes:         "",
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
