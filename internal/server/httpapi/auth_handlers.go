package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/platefeed/server/internal/errs"
	"github.com/platefeed/server/internal/model"
)

// Per-kind response wording kept from the original client contract.
func signUpMessage(kind model.Kind) string {
	if kind == model.KindFoodPartner {
		return "New food-partner user created"
	}
	return "New user created"
}

func signInMessage(kind model.Kind) string {
	if kind == model.KindFoodPartner {
		return "food-partner user Logged In"
	}
	return "User Logged In"
}

func logoutMessage(kind model.Kind) string {
	if kind == model.KindFoodPartner {
		return "Food-partner User logged out successfully."
	}
	return "User logged out successfully."
}

func (s *Server) handleSignUp(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "All fields are required.")
			return
		}

		ident, sess, err := s.auth.Register(r.Context(), kind, req.FullName, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, errs.ErrValidation):
				writeMessage(w, http.StatusBadRequest, "All fields are required.")
			case errors.Is(err, errs.ErrAlreadyExists):
				writeMessage(w, http.StatusBadRequest, "User already exists.")
			default:
				s.log.Error("register", zap.String("kind", string(kind)), zap.Error(err))
				writeMessage(w, http.StatusInternalServerError, "Error while registering user.")
			}
			return
		}

		s.setSessionCookie(w, sess.Token, sess.ExpiresAt)
		writeJSON(w, http.StatusCreated, signUpResponse{
			Message: signUpMessage(kind),
			User:    toIdentityDTO(ident),
		})
	}
}

func (s *Server) handleSignIn(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid Email or Password.")
			return
		}

		_, sess, err := s.auth.LoginWithIP(r.Context(), kind, req.Email, req.Password, remoteIP(r))
		if err != nil {
			switch {
			case errors.Is(err, errs.ErrUnauthorized):
				writeMessage(w, http.StatusBadRequest, "Invalid Email or Password.")
			case errors.Is(err, errs.ErrRateLimited):
				writeMessage(w, http.StatusTooManyRequests, "Too many sign-in attempts. Try again later.")
			default:
				s.log.Error("sign-in", zap.String("kind", string(kind)), zap.Error(err))
				writeMessage(w, http.StatusInternalServerError, "Internal server error.")
			}
			return
		}

		s.setSessionCookie(w, sess.Token, sess.ExpiresAt)
		writeMessage(w, http.StatusOK, signInMessage(kind))
	}
}

// handleLogout clears the cookie; it is idempotent and does not check for
// a session. The token itself stays valid until expiry — there is no
// server-side revocation.
func (s *Server) handleLogout(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.clearSessionCookie(w)
		writeMessage(w, http.StatusOK, logoutMessage(kind))
	}
}
