package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/httpresp"
	ucBooking "github.com/yrfilms/studio-backend/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateInquiry
	getUC    *ucBooking.GetInquiry
	listUC   *ucBooking.ListInquiries
	updateUC *ucBooking.UpdateInquiry
	deleteUC *ucBooking.DeleteInquiry
}

func NewBookingHandler(
	createUC *ucBooking.CreateInquiry,
	getUC *ucBooking.GetInquiry,
	listUC *ucBooking.ListInquiries,
	updateUC *ucBooking.UpdateInquiry,
	deleteUC *ucBooking.DeleteInquiry,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Service       string `json:"service" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	Message       string `json:"message"`
}

type UpdateBookingRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Service       *string `json:"service,omitempty"`
	PreferredDate *string `json:"preferredDate,omitempty"`
	Message       *string `json:"message,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// --------- Handlers ---------

// Create is the only unauthenticated write in the API: visitors submit
// booking inquiries from the public contact page.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Name, email, phone, service and preferred date are required")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateInquiryInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		Message:       req.Message,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_email") {
			httperr.BadRequest(c, "Please enter a valid email")
			return
		}
		httperr.Internal(c, "Error creating booking")
		return
	}

	httpresp.Created(c, gin.H{"booking": b})
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.Internal(c, "Error fetching bookings")
		return
	}

	httpresp.List(c, "bookings", bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Booking not found")
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "Booking not found")
			return
		}
		httperr.Internal(c, "Error fetching booking")
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Booking not found")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid booking payload")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), id, ucBooking.UpdateInquiryInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		Message:       req.Message,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "Booking not found")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "Status must be one of: new, contacted, booked, archived")
		default:
			httperr.Internal(c, "Error updating booking")
		}
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Booking not found")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "Booking not found")
			return
		}
		httperr.Internal(c, "Error deleting booking")
		return
	}

	httpresp.OK(c, gin.H{"message": "Booking deleted successfully"})
}

