package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahatoankit/flightbook/internal/domain"
	"github.com/mahatoankit/flightbook/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	CustomerID int64 `json:"customer_id"`
	FlightID   int64 `json:"flight_id"`
	// Optional; defaults to today. The fee tier depends on it.
	BookingDate string `json:"booking_date"`
}

type rebookRequest struct {
	FlightID int64 `json:"flight_id"`
}

type bookingResponse struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customer_id"`
	FlightID    int64   `json:"flight_id"`
	BookingDate string  `json:"booking_date"`
	Fee         float64 `json:"fee"`
	Cancelled   bool    `json:"cancelled"`
	Paid        bool    `json:"paid"`
}

type cancelResponse struct {
	BookingID       int64   `json:"booking_id"`
	CancellationFee float64 `json:"cancellation_fee"`
	Refund          float64 `json:"refund"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.GET("/bookings", h.list)
	router.GET("/bookings/:id", h.get)
	router.PUT("/bookings/:id", h.rebook)
	router.DELETE("/bookings/:id", h.cancel)
	router.POST("/bookings/:id/paid", h.markPaid)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input := booking.CreateBookingInput{CustomerID: req.CustomerID, FlightID: req.FlightID}
	if req.BookingDate != "" {
		date, err := time.Parse(dateLayout, req.BookingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking_date must be YYYY-MM-DD"})
			return
		}
		input.BookingDate = date
	}

	created, err := h.service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(*created))
}

// list returns active bookings, or the cancelled set with ?cancelled=true.
func (h *BookingHandler) list(c *gin.Context) {
	var (
		bookings []domain.Booking
		err      error
	)
	if c.Query("cancelled") == "true" {
		bookings, err = h.service.ListCancelled(c.Request.Context())
	} else {
		bookings, err = h.service.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(*b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	fee := 0.0
	if raw := c.Query("fee"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fee must be a number"})
			return
		}
		fee = parsed
	}

	result, err := h.service.CancelBooking(c.Request.Context(), id, fee)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelResponse{
		BookingID:       result.BookingID,
		CancellationFee: result.CancellationFee,
		Refund:          result.Refund,
	})
}

func (h *BookingHandler) rebook(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req rebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rebooked, err := h.service.RebookBooking(c.Request.Context(), id, req.FlightID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(*rebooked))
}

func (h *BookingHandler) markPaid(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := h.service.MarkPaid(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		FlightID:    b.FlightID,
		BookingDate: b.BookingDate.Format(dateLayout),
		Fee:         b.Fee,
		Cancelled:   b.Cancelled,
		Paid:        b.PaymentProcessed,
	}
}
