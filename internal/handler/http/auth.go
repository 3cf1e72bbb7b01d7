package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardmart/cardmart/internal/models"
)

type AuthService interface {
	// LoginAdmin checks credentials and issues an auth token for an admin user
	LoginAdmin(ctx context.Context, login, password string) (string, error)
}

// AuthHandler represents HTTP handler for authentication requests
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginAdmin authenticates an admin and sets the auth cookie
// 200 — администратор аутентифицирован;
// 400 — неверный формат запроса;
// 401 — неверная пара логин/пароль или нет прав администратора;
// 500 — внутренняя ошибка сервера.
func (ah *AuthHandler) LoginAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := loginRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if req.Login == "" || req.Password == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		token, err := ah.svc.LoginAdmin(r.Context(), req.Login, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) || errors.Is(err, models.ErrUnauthorized) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "auth_token",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})

		w.WriteHeader(http.StatusOK)
	}
}
