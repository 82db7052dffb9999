package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahatoankit/flightbook/internal/domain"
	"github.com/mahatoankit/flightbook/internal/service/booking"
	"github.com/mahatoankit/flightbook/internal/service/customers"
)

type CustomerHandler struct {
	service  customers.CustomerUseCase
	bookings booking.BookingUseCase
}

type registerCustomerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// The password never leaves the server, cleartext or otherwise.
type customerResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Bookings int    `json:"bookings"`
	Deleted  bool   `json:"deleted,omitempty"`
}

func NewCustomerHandler(service customers.CustomerUseCase, bookings booking.BookingUseCase) *CustomerHandler {
	return &CustomerHandler{service: service, bookings: bookings}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.POST("/customers", h.register)
	router.GET("/customers/:id", h.get)
	router.PUT("/customers/:id", h.update)
	router.GET("/customers/:id/bookings", h.listBookings)
}

func (h *CustomerHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/customers", h.list)
	router.GET("/customers/all", h.listAll)
	router.DELETE("/customers/:id", h.remove)
}

func (h *CustomerHandler) register(c *gin.Context) {
	var req registerCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.service.Register(c.Request.Context(), customers.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(*customer))
}

func (h *CustomerHandler) get(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

func (h *CustomerHandler) update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := h.service.Update(c.Request.Context(), id, customers.UpdateInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

func (h *CustomerHandler) listBookings(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	if _, err := h.service.GetByID(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	list, err := h.bookings.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]bookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) list(c *gin.Context) {
	active, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCustomerResponses(active))
}

func (h *CustomerHandler) listAll(c *gin.Context) {
	all, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCustomerResponses(all))
}

func (h *CustomerHandler) remove(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func toCustomerResponse(cu domain.Customer) customerResponse {
	return customerResponse{
		ID:       cu.ID,
		Name:     cu.Name,
		Phone:    cu.Phone,
		Email:    cu.Email,
		Bookings: len(cu.BookingIDs()),
		Deleted:  cu.Deleted,
	}
}

func toCustomerResponses(list []domain.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(list))
	for _, cu := range list {
		out = append(out, toCustomerResponse(cu))
	}
	return out
}
