package handler

import (
	"net/http"

	"patient-health-api/internal/usecase"
	"patient-health-api/pkg/response"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Logout revokes the presented access token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentAccount returns the account behind the access token
func (h *AuthHandler) GetCurrentAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.authUsecase.GetCurrentAccount(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Account retrieved successfully", account)
}
