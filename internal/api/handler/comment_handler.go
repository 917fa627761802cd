package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	StartupID string `json:"startup_id" validate:"required"`
	Body      string `json:"body"       validate:"required"`
}

// Create handles POST /api/comments.
//
// @Summary      Comment on a startup
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Post(c.Request().Context(), actor, req.StartupID, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// ListByStartup handles GET /api/comments/startup/:startupID.
//
// @Summary      List comments on a startup
// @Tags         comments
// @Produce      json
// @Param        startupID  path  string  true  "Startup id"
// @Success      200  {array}  domain.CommentSummary
// @Failure      404  {object}  errorResponse
// @Router       /api/comments/startup/{startupID} [get]
func (h *CommentHandler) ListByStartup(c echo.Context) error {
	comments, err := h.service.ListByStartup(c.Request().Context(), c.Param("startupID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/:id (author or admin).
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "comment deleted"})
}
