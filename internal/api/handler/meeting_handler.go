package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type MeetingHandler struct {
	service ports.MeetingService
}

func NewMeetingHandler(service ports.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

type scheduleMeetingRequest struct {
	AttendeeID  string    `json:"attendee_id"  validate:"required"`
	PitchID     string    `json:"pitch_id"`
	Title       string    `json:"title"        validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	MeetingLink string    `json:"meeting_link"`
	Notes       string    `json:"notes"`
}

// Schedule handles POST /api/meetings.
//
// @Summary      Schedule a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scheduleMeetingRequest  true  "Meeting details"
// @Success      201   {object}  domain.Meeting
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/meetings [post]
func (h *MeetingHandler) Schedule(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req scheduleMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	meeting, err := h.service.Schedule(c.Request().Context(), actor, ports.ScheduleMeetingInput{
		AttendeeID:  req.AttendeeID,
		PitchID:     req.PitchID,
		Title:       req.Title,
		ScheduledAt: req.ScheduledAt,
		MeetingLink: req.MeetingLink,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, meeting)
}

// List handles GET /api/meetings — meetings the actor is a party to.
//
// @Summary      List my meetings
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Meeting
// @Router       /api/meetings [get]
func (h *MeetingHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	meetings, err := h.service.ListForActor(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meetings)
}

// Cancel handles DELETE /api/meetings/:id (organizer or admin).
//
// @Summary      Cancel a meeting
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Meeting id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/meetings/{id} [delete]
func (h *MeetingHandler) Cancel(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Cancel(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "meeting cancelled"})
}
