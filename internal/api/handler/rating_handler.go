package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type RatingHandler struct {
	service ports.RatingService
}

func NewRatingHandler(service ports.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

type createRatingRequest struct {
	SubjectID string `json:"subject_id" validate:"required"`
	StartupID string `json:"startup_id"`
	Score     int    `json:"score"      validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// Create handles POST /api/ratings.
//
// @Summary      Rate a user
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRatingRequest  true  "Rating"
// @Success      201   {object}  domain.Rating
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/ratings [post]
func (h *RatingHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.service.Rate(c.Request().Context(), actor, req.SubjectID, req.StartupID, req.Score, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rating)
}

// ListBySubject handles GET /api/ratings/user/:userID.
//
// @Summary      List ratings for a user
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        userID  path  string  true  "Subject user id"
// @Success      200  {array}  domain.Rating
// @Router       /api/ratings/user/{userID} [get]
func (h *RatingHandler) ListBySubject(c echo.Context) error {
	ratings, err := h.service.ListBySubject(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratings)
}

// Delete handles DELETE /api/ratings/:id (rater or admin).
//
// @Summary      Delete a rating
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Rating id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/ratings/{id} [delete]
func (h *RatingHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "rating deleted"})
}
