package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// StartupHandler handles HTTP requests for startup listings.
type StartupHandler struct {
	service ports.StartupService
}

func NewStartupHandler(service ports.StartupService) *StartupHandler {
	return &StartupHandler{service: service}
}

// Create handles POST /api/startups (founder only).
//
// @Summary      Create a startup listing
// @Tags         startups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStartupRequest  true  "Listing details"
// @Success      201   {object}  domain.Startup
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/startups [post]
func (h *StartupHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createStartupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	startup, err := h.service.Create(c.Request().Context(), actor, ports.CreateStartupInput{
		Name:          req.Name,
		Domain:        req.Domain,
		Stage:         domain.FundingStage(req.Stage),
		Description:   req.Description,
		FundingTarget: req.FundingTarget,
		EquityOffered: req.EquityOffered,
		PitchDeckURL:  req.PitchDeckURL,
		VideoURL:      req.VideoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, startup)
}

// List handles GET /api/startups with optional domain/stage/founder filters.
//
// @Summary      List startups
// @Tags         startups
// @Produce      json
// @Param        domain   query  string  false  "Filter by domain"
// @Param        stage    query  string  false  "Filter by funding stage"
// @Param        founder  query  string  false  "Filter by founder id"
// @Success      200  {array}  domain.StartupSummary
// @Router       /api/startups [get]
func (h *StartupHandler) List(c echo.Context) error {
	startups, err := h.service.List(c.Request().Context(), ports.StartupFilter{
		FounderID: c.QueryParam("founder"),
		Domain:    c.QueryParam("domain"),
		Stage:     domain.FundingStage(c.QueryParam("stage")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startups)
}

// Get handles GET /api/startups/:id.
//
// @Summary      Get a startup
// @Tags         startups
// @Produce      json
// @Param        id  path  string  true  "Startup id"
// @Success      200  {object}  domain.StartupSummary
// @Failure      404  {object}  errorResponse
// @Router       /api/startups/{id} [get]
func (h *StartupHandler) Get(c echo.Context) error {
	startup, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startup)
}

// Update handles PUT /api/startups/:id (owning founder or admin).
//
// @Summary      Update a startup
// @Tags         startups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Startup id"
// @Param        body  body      updateStartupRequest  true  "Fields to update"
// @Success      200   {object}  domain.Startup
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/startups/{id} [put]
func (h *StartupHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStartupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var stage *domain.FundingStage
	if req.Stage != nil {
		s := domain.FundingStage(*req.Stage)
		stage = &s
	}

	startup, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateStartupInput{
		Name:          req.Name,
		Domain:        req.Domain,
		Stage:         stage,
		Description:   req.Description,
		FundingTarget: req.FundingTarget,
		EquityOffered: req.EquityOffered,
		PitchDeckURL:  req.PitchDeckURL,
		VideoURL:      req.VideoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startup)
}

// Delete handles DELETE /api/startups/:id (owning founder or admin).
//
// @Summary      Delete a startup
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Startup id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/startups/{id} [delete]
func (h *StartupHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "startup deleted"})
}
