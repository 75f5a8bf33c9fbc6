package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/auth"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/usecase"
)

// AuthHandler maneja login y alta de personal.
type AuthHandler struct {
	authUC *auth.UseCase
	userUC *usecase.UserUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(authUC *auth.UseCase, userUC *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC, userUC: userUC}
}

// Login godoc
// @Summary      Login del personal
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.authUC.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Alta de personal (sólo Administrador)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.userUC.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
