package handlers

import (
	"net/http"

	"github.com/raflidev/go-fixmart/app/models"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/raflidev/go-fixmart/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo repositories.UserRepositoryImpl
	otp      *services.OTPService
	render   *render.Render
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, otp *services.OTPService, r *render.Render) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, otp: otp, render: r}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if existing != nil {
		_ = h.render.JSON(w, http.StatusConflict, map[string]string{"message": "email already registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(h.render, w, err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid email or password"})
		return
	}

	if err := sessions.SetUser(w, r, user.ID, user.Role); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := sessions.Clear(w, r); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a 5-minute OTP to the account email. The response
// is identical whether or not the account exists.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if user != nil {
		if err := h.otp.Issue(r.Context(), req.Email); err != nil {
			writeError(h.render, w, err)
			return
		}
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "if the account exists, a verification code has been sent"})
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPassword verifies and consumes the OTP, then replaces the password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	valid, err := h.otp.Verify(r.Context(), req.Email, req.Code)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if !valid {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid or expired code"})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if user == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "account not found"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	if err := h.userRepo.UpdatePassword(r.Context(), user.ID, string(hashed)); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
