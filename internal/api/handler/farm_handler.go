package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harvestly/farmbook-api/internal/api/metrics"
	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

// FarmHandler handles HTTP requests for farm listings.
type FarmHandler struct {
	service ports.FarmService
}

func NewFarmHandler(service ports.FarmService) *FarmHandler {
	return &FarmHandler{service: service}
}

// List handles GET /api/farms.
//
// @Summary      List all farms, name ascending
// @Tags         farms
// @Produce      json
// @Success      200  {array}   farmResponse
// @Failure      503  {object}  errorResponse
// @Router       /farms [get]
func (h *FarmHandler) List(c echo.Context) error {
	farms, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFarmResponses(farms))
}

// Get handles GET /api/farms/:id.
//
// @Summary      Get a single farm
// @Tags         farms
// @Produce      json
// @Param        id   path      string  true  "Farm id"
// @Success      200  {object}  farmResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /farms/{id} [get]
func (h *FarmHandler) Get(c echo.Context) error {
	farm, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFarmResponse(farm))
}

// Create handles POST /api/farms.
//
// @Summary      Create a farm listing
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        body  body      createFarmRequest  true  "Farm details"
// @Success      201   {object}  farmResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /farms [post]
func (h *FarmHandler) Create(c echo.Context) error {
	var req createFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.service.Create(c.Request().Context(), ports.CreateFarmInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Products:    req.Products,
		Owner:       req.Owner,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("farm").Inc()
	return c.JSON(http.StatusCreated, toFarmResponse(farm))
}

func toFarmResponse(f *domain.Farm) farmResponse {
	products := f.Products
	if products == nil {
		products = []string{}
	}
	return farmResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		Products:    products,
		Owner:       f.Owner,
	}
}

func toFarmResponses(farms []*domain.Farm) []farmResponse {
	out := make([]farmResponse, 0, len(farms))
	for _, f := range farms {
		out = append(out, toFarmResponse(f))
	}
	return out
}
