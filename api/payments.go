package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahatoankit/flightbook/internal/domain"
	"github.com/mahatoankit/flightbook/internal/service/booking"
)

type PaymentHandler struct {
	service booking.BookingUseCase
}

type logPaymentRequest struct {
	BookingID  int64   `json:"booking_id"`
	Amount     float64 `json:"amount"`
	CardNumber string  `json:"card_number"`
	ExpiryDate string  `json:"expiry_date"`
}

// Only the trailing four card digits ever leave the server.
type paymentResponse struct {
	BookingID   int64   `json:"booking_id"`
	Amount      float64 `json:"amount"`
	Card        string  `json:"card"`
	ExpiryDate  string  `json:"expiry_date"`
	PaymentDate string  `json:"payment_date"`
}

func NewPaymentHandler(service booking.BookingUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/payments", h.log)
	router.GET("/payments", h.list)
}

func (h *PaymentHandler) log(c *gin.Context) {
	var req logPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.service.LogPayment(c.Request.Context(), booking.PaymentInput{
		BookingID:  req.BookingID,
		Amount:     req.Amount,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

func (h *PaymentHandler) list(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func toPaymentResponse(p domain.Payment) paymentResponse {
	return paymentResponse{
		BookingID:   p.BookingID,
		Amount:      p.Amount,
		Card:        p.MaskedCard(),
		ExpiryDate:  p.ExpiryDate,
		PaymentDate: p.PaymentDate.Format(dateLayout),
	}
}
