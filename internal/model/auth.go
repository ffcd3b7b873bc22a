package model

import "github.com/sakif/forum-api/internal/apperror"

// TokenPayload is the identity embedded in both access and refresh tokens.
type TokenPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// NewAuth is the token pair issued on login.
type NewAuth struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func NewNewAuth(accessToken, refreshToken string) (*NewAuth, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, apperror.Domain(apperror.EntityNewAuth, apperror.ReasonMissingProperty)
	}
	return &NewAuth{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ParseRefreshToken extracts the refreshToken field for the refresh and
// logout flows. entity selects which use case's codes are reported.
func ParseRefreshToken(entity apperror.Entity, p Payload) (string, error) {
	raw, present := p["refreshToken"]
	if !present || raw == nil {
		return "", apperror.Domain(entity, apperror.ReasonMissingRefreshToken)
	}
	token, ok := raw.(string)
	if !ok {
		return "", apperror.Domain(entity, apperror.ReasonRefreshTokenInvalidType)
	}
	if token == "" {
		return "", apperror.Domain(entity, apperror.ReasonMissingRefreshToken)
	}
	return token, nil
}
