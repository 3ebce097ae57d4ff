package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harvestly/farmbook-api/internal/api/metrics"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for visit bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings.
//
// @Summary      Create a booking (always starts pending)
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  createdBookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		FarmID: req.Farm,
		UserID: req.User,
		Date:   req.Date,
		Time:   req.Time,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("booking").Inc()
	return c.JSON(http.StatusCreated, createdBookingResponse{
		ID:     booking.ID,
		Farm:   booking.FarmID,
		User:   booking.UserID,
		Date:   booking.Date,
		Time:   booking.Time,
		Status: string(booking.Status),
	})
}

// ListForUser handles GET /api/bookings/user/:userId.
//
// @Summary      List a user's bookings, date descending, with farm joined
// @Tags         bookings
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   bookingResponse
// @Failure      503     {object}  errorResponse
// @Router       /bookings/user/{userId} [get]
func (h *BookingHandler) ListForUser(c echo.Context) error {
	views, err := h.service.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	out := make([]bookingResponse, 0, len(views))
	for _, v := range views {
		item := bookingResponse{
			ID:     v.ID,
			User:   v.UserID,
			Date:   v.Date,
			Time:   v.Time,
			Status: string(v.Status),
		}
		if v.Farm != nil {
			item.Farm = &bookingFarmResponse{
				ID:       v.Farm.ID,
				Name:     v.Farm.Name,
				Location: v.Farm.Location,
			}
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, out)
}
