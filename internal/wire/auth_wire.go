package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/auth/signup", authHandler.SignUp)
	r.Post("/auth/confirm_signup", authHandler.ConfirmSignUp)
	r.Post("/auth/signin", authHandler.SignIn)
	r.Post("/auth/signout", authHandler.SignOut)
}
