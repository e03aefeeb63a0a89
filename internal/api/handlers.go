package api

import (
	"encoding/json"
	"net/http"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request payload"})
		return
	}
	token, err := s.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, token)
	writeSuccess(w, "registration successful")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request payload"})
		return
	}
	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	setSessionCookie(w, token)
	writeSuccess(w, "login successful")
}

func (s *Server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeSuccess(w, "logged out")
}

func (s *Server) isAuthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, "authenticated")
}

func (s *Server) sendVerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	id := AccountID(r.Context())
	if err := s.auth.SendVerificationCode(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "verification otp sent")
}

type verifyAccountRequest struct {
	OTP string `json:"otp"`
}

func (s *Server) verifyAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req verifyAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request payload"})
		return
	}
	id := AccountID(r.Context())
	if err := s.auth.VerifyAccount(r.Context(), id, req.OTP); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "account verified")
}

type sendResetOTPRequest struct {
	Email string `json:"email"`
}

func (s *Server) sendResetOTPHandler(w http.ResponseWriter, r *http.Request) {
	var req sendResetOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request payload"})
		return
	}
	if err := s.auth.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "reset otp sent")
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (s *Server) resetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request payload"})
		return
	}
	if err := s.auth.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "password reset successful")
}

func (s *Server) userDataHandler(w http.ResponseWriter, r *http.Request) {
	id := AccountID(r.Context())
	profile, err := s.auth.UserData(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, User: profile})
}
