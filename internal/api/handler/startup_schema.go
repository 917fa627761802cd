package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createStartupRequest struct {
	Name          string  `json:"name"           validate:"required"`
	Domain        string  `json:"domain"         validate:"required"`
	Stage         string  `json:"stage"          validate:"required,oneof=idea MVP revenue"`
	Description   string  `json:"description"`
	FundingTarget float64 `json:"funding_target" validate:"omitempty,gt=0"`
	EquityOffered float64 `json:"equity_offered" validate:"omitempty,gt=0,max=100"`
	PitchDeckURL  string  `json:"pitch_deck_url"`
	VideoURL      string  `json:"video_url"`
}

type updateStartupRequest struct {
	Name          *string  `json:"name"`
	Domain        *string  `json:"domain"`
	Stage         *string  `json:"stage" validate:"omitempty,oneof=idea MVP revenue"`
	Description   *string  `json:"description"`
	FundingTarget *float64 `json:"funding_target" validate:"omitempty,gt=0"`
	EquityOffered *float64 `json:"equity_offered" validate:"omitempty,gt=0,max=100"`
	PitchDeckURL  *string  `json:"pitch_deck_url"`
	VideoURL      *string  `json:"video_url"`
}
