package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/api/metrics"
	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// PitchHandler handles HTTP requests for pitches.
type PitchHandler struct {
	service ports.PitchService
}

func NewPitchHandler(service ports.PitchService) *PitchHandler {
	return &PitchHandler{service: service}
}

type createPitchRequest struct {
	StartupID  string `json:"startup_id"  validate:"required"`
	InvestorID string `json:"investor_id" validate:"required"`
	Message    string `json:"message"`
}

type updatePitchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending viewed interested rejected"`
}

// Create handles POST /api/pitches (founder pitching their startup).
//
// @Summary      Create a pitch
// @Tags         pitches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPitchRequest  true  "Pitch details"
// @Success      201   {object}  domain.Pitch
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/pitches [post]
func (h *PitchHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPitchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pitch, err := h.service.Create(c.Request().Context(), actor, ports.CreatePitchInput{
		StartupID:  req.StartupID,
		InvestorID: req.InvestorID,
		Message:    req.Message,
	})
	if err != nil {
		return err
	}

	metrics.PitchesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, pitch)
}

// List handles GET /api/pitches — pitches the actor is a party to.
//
// @Summary      List my pitches
// @Tags         pitches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PitchSummary
// @Router       /api/pitches [get]
func (h *PitchHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	pitches, err := h.service.ListForActor(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pitches)
}

// ListByStartup handles GET /api/pitches/startup/:startupID.
//
// @Summary      List pitches for a startup
// @Tags         pitches
// @Produce      json
// @Security     BearerAuth
// @Param        startupID  path  string  true  "Startup id"
// @Success      200  {array}  domain.PitchSummary
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/pitches/startup/{startupID} [get]
func (h *PitchHandler) ListByStartup(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	pitches, err := h.service.ListByStartup(c.Request().Context(), actor, c.Param("startupID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pitches)
}

// Get handles GET /api/pitches/:id (parties only).
//
// @Summary      Get a pitch
// @Tags         pitches
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pitch id"
// @Success      200  {object}  domain.PitchSummary
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/pitches/{id} [get]
func (h *PitchHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	pitch, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pitch)
}

// UpdateStatus handles PUT /api/pitches/:id/status (target investor only).
//
// @Summary      Update pitch status
// @Tags         pitches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Pitch id"
// @Param        body  body      updatePitchStatusRequest  true  "New status"
// @Success      200   {object}  domain.Pitch
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/pitches/{id}/status [put]
func (h *PitchHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePitchStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pitch, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), domain.PitchStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.PitchTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, pitch)
}

// Delete handles DELETE /api/pitches/:id (owning founder or admin).
//
// @Summary      Delete a pitch
// @Tags         pitches
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pitch id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/pitches/{id} [delete]
func (h *PitchHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "pitch deleted"})
}
