package adaptor

import (
	"errors"
	"io"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// SignUp handles POST /auth/signup (public)
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "sign up")
		return
	}

	utils.ResponseCreated(w, "User signed up. Check your email for the confirmation code.", result)
}

// ConfirmSignUp handles POST /auth/confirm_signup (public)
func (h *AuthHandler) ConfirmSignUp(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmSignUpRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ConfirmSignUp(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "confirm sign up")
		return
	}

	utils.ResponseSuccess(w, "User confirmed successfully", nil)
}

// SignIn handles POST /auth/signin (public). On success the ID token is set
// as an HttpOnly cookie; the token itself never appears in the body.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "sign in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(result.ExpiresIn),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	utils.ResponseSuccess(w, "Signed in successfully", result)
}

// SignOut handles POST /auth/signout (public). Expires the token cookie;
// the token itself stays valid until its own expiry.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	utils.ResponseSuccess(w, "Signed out successfully", nil)
}
