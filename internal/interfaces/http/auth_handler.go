package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestione-sindacale/internal/application/auth"
	"github.com/jhoicas/gestione-sindacale/internal/application/dto"
)

// AuthHandler maneja registro, login, sesión y recuperación de credenciales.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	reset *auth.PasswordResetUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, reset *auth.PasswordResetUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, reset: reset}
}

// Register godoc
// @Summary      Registrar operador
// @Description  El primer registro de una sede la crea (owner); los siguientes entran como operator.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, nomeSede, operatore"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password sono obbligatori"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me operador autenticado.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout registra el cierre de sesión del token.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.LogoutActor(c.Context(), GetActor(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RequestPasswordReset envía el enlace de recuperación.
// POST /api/auth/password-reset
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetRequest
	if err := c.BodyParser(&in); err != nil || in.Email == "" {
		return badBody(c)
	}
	res, err := h.reset.Request(c.Context(), in.Email)
	if err != nil {
		return writeError(c, err)
	}
	if !res.Success {
		return c.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return c.Status(fiber.StatusAccepted).JSON(res)
}

// ConfirmPasswordReset fija la nueva credencial.
// POST /api/auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetConfirm
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.reset.Confirm(c.Context(), in.Token, in.Password); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
