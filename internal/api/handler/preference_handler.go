package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type PreferenceHandler struct {
	service ports.PreferenceService
}

func NewPreferenceHandler(service ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

type setPreferenceRequest struct {
	Domains   []string `json:"domains"`
	Stages    []string `json:"stages" validate:"dive,oneof=idea MVP revenue"`
	Locations []string `json:"locations"`
	MinEquity float64  `json:"min_equity" validate:"omitempty,gt=0,max=100"`
	MaxEquity float64  `json:"max_equity" validate:"omitempty,gt=0,max=100"`
}

// Set handles PUT /api/investor-preferences (investor only).
//
// @Summary      Set my matching preferences
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setPreferenceRequest  true  "Filters"
// @Success      200   {object}  domain.InvestorPreference
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/investor-preferences [put]
func (h *PreferenceHandler) Set(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req setPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stages := make([]domain.FundingStage, 0, len(req.Stages))
	for _, s := range req.Stages {
		stages = append(stages, domain.FundingStage(s))
	}

	pref, err := h.service.Set(c.Request().Context(), actor, ports.PreferenceInput{
		Domains:   req.Domains,
		Stages:    stages,
		Locations: req.Locations,
		MinEquity: req.MinEquity,
		MaxEquity: req.MaxEquity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pref)
}

// Get handles GET /api/investor-preferences/:investorID.
//
// @Summary      Get an investor's preferences
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Param        investorID  path  string  true  "Investor id"
// @Success      200  {object}  domain.InvestorPreference
// @Failure      404  {object}  errorResponse
// @Router       /api/investor-preferences/{investorID} [get]
func (h *PreferenceHandler) Get(c echo.Context) error {
	pref, err := h.service.Get(c.Request().Context(), c.Param("investorID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pref)
}
