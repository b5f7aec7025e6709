// controller/booking_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/middleware"
	"github.com/evgrid/console/service"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	helper_util "github.com/evgrid/console/util/helper"
	"github.com/evgrid/console/validation"
)

type BookingController struct {
	bookingService service.IBookingService
}

func NewBookingController(bookingService service.IBookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// RegisterRoutes registers the Backoffice booking administration routes.
func (bc *BookingController) RegisterRoutes(r gin.IRouter) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", bc.ListBookings)
		bookings.POST("", bc.CreateBooking)
		bookings.GET("/:id", bc.GetBooking)
		bookings.PUT("/:id", bc.UpdateBooking)
		bookings.DELETE("/:id", bc.CancelBooking)
		bookings.POST("/:id/approve", bc.ApproveBooking)
	}
}

// RegisterOperatorRoutes registers the station-side booking routes.
func (bc *BookingController) RegisterOperatorRoutes(r gin.IRouter) {
	r.GET("/bookings", bc.ListBookings)
	r.POST("/bookings/:id/approve", bc.ApproveBooking)
	r.POST("/bookings/:id/finalize", bc.FinalizeBooking)
	r.POST("/scan", bc.ScanBooking)
}

func bookingFilter(c *gin.Context) (upstream.BookingFilter, error) {
	q, page, pageSize, err := helper_util.GetListParams(c)
	if err != nil {
		return upstream.BookingFilter{}, err
	}
	f := upstream.BookingFilter{
		Query:     q,
		Status:    c.Query("status"),
		StationID: c.Query("stationId"),
		Page:      page,
		PageSize:  pageSize,
	}
	if raw := c.Query("from"); raw != "" {
		t, err := helper_util.ParseTime(raw)
		if err != nil {
			return upstream.BookingFilter{}, err
		}
		f.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := helper_util.ParseTime(raw)
		if err != nil {
			return upstream.BookingFilter{}, err
		}
		f.To = t
	}
	return f, nil
}

// ListBookings endpoint
func (bc *BookingController) ListBookings(c *gin.Context) {
	f, err := bookingFilter(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid filter parameters", err)
		return
	}

	list, err := bc.bookingService.List(c, middleware.TokenFromContext(c), f)
	if err != nil {
		respondServiceError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateBooking endpoint
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var form validation.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid booking data", console_errors.ErrInvalidBookingData)
		return
	}

	booking, err := bc.bookingService.Create(c, middleware.TokenFromContext(c), form)
	if err != nil {
		respondServiceError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBooking endpoint
func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, err := bc.bookingService.Get(c, middleware.TokenFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking endpoint
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	var form validation.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid booking data", console_errors.ErrInvalidBookingData)
		return
	}

	booking, err := bc.bookingService.Update(c, middleware.TokenFromContext(c), c.Param("id"), form)
	if err != nil {
		respondServiceError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking endpoint
func (bc *BookingController) CancelBooking(c *gin.Context) {
	err := bc.bookingService.Cancel(c, middleware.TokenFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to cancel booking")
		return
	}

	c.Status(http.StatusNoContent)
}

// ApproveBooking endpoint
func (bc *BookingController) ApproveBooking(c *gin.Context) {
	booking, err := bc.bookingService.Approve(c, middleware.TokenFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to approve booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// FinalizeBooking endpoint
func (bc *BookingController) FinalizeBooking(c *gin.Context) {
	booking, err := bc.bookingService.Finalize(c, middleware.TokenFromContext(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to finalize booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

type scanRequest struct {
	Code string `json:"code"`
}

// ScanBooking endpoint validates a scanned QR payload.
func (bc *BookingController) ScanBooking(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Scan code is required", err)
		return
	}

	booking, err := bc.bookingService.Scan(c, middleware.TokenFromContext(c), req.Code)
	if err != nil {
		respondServiceError(c, err, "Failed to validate scan")
		return
	}

	c.JSON(http.StatusOK, booking)
}
