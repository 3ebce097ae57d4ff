package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harvestly/farmbook-api/internal/api/metrics"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for farm reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /api/reviews.
//
// @Summary      Submit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  createdReviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		FarmID:  req.Farm,
		UserID:  req.User,
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("review").Inc()
	return c.JSON(http.StatusCreated, createdReviewResponse{
		ID:      review.ID,
		Farm:    review.FarmID,
		User:    review.UserID,
		Rating:  review.Rating,
		Comment: review.Comment,
		Date:    review.Date,
	})
}

// List handles GET /api/reviews?farmId=.
//
// @Summary      List reviews, date descending, with author joined
// @Tags         reviews
// @Produce      json
// @Param        farmId  query     string  false  "Filter to one farm"
// @Success      200     {array}   reviewResponse
// @Failure      503     {object}  errorResponse
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context(), c.QueryParam("farmId"))
	if err != nil {
		return err
	}

	out := make([]reviewResponse, 0, len(views))
	for _, v := range views {
		item := reviewResponse{
			ID:      v.ID,
			Farm:    v.FarmID,
			Rating:  v.Rating,
			Comment: v.Comment,
			Date:    v.Date,
		}
		if v.User != nil {
			item.User = &reviewUserResponse{ID: v.User.ID, Name: v.User.Name}
		}
		out = append(out, item)
	}
	return c.JSON(http.StatusOK, out)
}
