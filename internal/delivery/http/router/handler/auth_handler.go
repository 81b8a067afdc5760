// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"wellness/internal/delivery/http/response"
	"wellness/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2" label:"Nome"`
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required,min=6" label:"Senha"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Senha"`
}

type googleLoginRequest struct {
	GoogleToken string `json:"googleToken" validate:"required" label:"Google Token"`
	Email       string `json:"email" validate:"required,email" label:"Email"`
	Name        string `json:"name" validate:"required,min=2" label:"Nome"`
}

type updateProfileRequest struct {
	Name *string `json:"name"`
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the password account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toAuthView(output, "Usuário criado com sucesso"))
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAuthView(output, "Login realizado com sucesso"))
}

// GoogleLogin handles sign-in with a Google ID token obtained by the mobile client.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.FederatedLogin(c.Request().Context(), usecase.FederatedLoginInput{
		IdentityToken: req.GoogleToken,
		Email:         req.Email,
		Name:          req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAuthView(output, "Login com Google realizado com sucesso"))
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetByID(c.Request().Context(), session.Identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, userBody{User: toUserView(user)})
}

// UpdateMe changes the authenticated user's profile.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), session.Identity.UserID, usecase.UpdateProfileInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, userBody{Message: "Usuário atualizado com sucesso", User: toUserView(user)})
}

// Logout invalidates the current token. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	h.uc.Logout(c.Request().Context(), session)

	return response.Message(c, http.StatusOK, "Logout realizado com sucesso")
}

// LogoutAll invalidates every token of the authenticated user. It always succeeds.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	h.uc.LogoutAll(c.Request().Context(), session)

	return response.Message(c, http.StatusOK, "Todas as sessões foram encerradas")
}
