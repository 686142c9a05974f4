package models

// RatingInput represents the five rating axes of a review
type RatingInput struct {
	Coaching     int `json:"coaching" validate:"required,min=1,max=5"`
	Development  int `json:"development" validate:"required,min=1,max=5"`
	Transparency int `json:"transparency" validate:"required,min=1,max=5"`
	Culture      int `json:"culture" validate:"required,min=1,max=5"`
	Safety       int `json:"safety" validate:"required,min=1,max=5"`
}

// CreateReviewRequest represents a review creation request
type CreateReviewRequest struct {
	TeamID     int         `json:"team_id" validate:"required,min=1"`
	Title      string      `json:"title" validate:"required,min=3,max=200"`
	Body       string      `json:"body" validate:"required,min=10"`
	SeasonTerm string      `json:"season_term" validate:"required,oneof=spring summer fall winter"`
	SeasonYear int         `json:"season_year" validate:"required,min=2000,max=2100"`
	Rating     RatingInput `json:"rating" validate:"required"`
}

// UpdateReviewRequest represents a review update request
type UpdateReviewRequest struct {
	Title  *string      `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Body   *string      `json:"body,omitempty" validate:"omitempty,min=10"`
	Rating *RatingInput `json:"rating,omitempty"`
}

// ResponseRequest represents an organization response to a review
type ResponseRequest struct {
	Body string `json:"body" validate:"required,min=2"`
}

// FlagRequest represents a moderation flag against a review
type FlagRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// CreateOrganizationRequest represents an organization creation request
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

// CreateTeamRequest represents a team creation request
type CreateTeamRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=200"`
	OrganizationID int    `json:"organization_id" validate:"required,min=1"`
	Division       string `json:"division,omitempty"`
	AgeLevel       string `json:"age_level,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
}

// ImportTeamsRequest represents a bulk team import request
type ImportTeamsRequest struct {
	OrganizationID int                 `json:"organization_id" validate:"required,min=1"`
	Teams          []CreateTeamRequest `json:"teams" validate:"required,min=1,dive"`
}

// ModerateFlagRequest represents an admin decision on a flag
type ModerateFlagRequest struct {
	Status string `json:"status" validate:"required,oneof=reviewed resolved rejected"`
}

// UpdateTeamStatusRequest represents an admin decision on a team listing
type UpdateTeamStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// SetVisibilityRequest represents a moderation decision on a review's visibility
type SetVisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}
