package response

import "stash-backend/internal/usecase"

type LoginResponse struct {
	AccessToken string                    `json:"accessToken"`
	User        usecase.AuthenticatedUser `json:"user"`
}

func FromLoginResult(result *usecase.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: result.Token,
		User:        result.User,
	}
}
