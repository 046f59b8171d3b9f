package handlers

import (
	"makecut/internal/domain/dto"
	"makecut/internal/usecases"
	"makecut/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	accountService usecases.AccountService
}

func NewAuthHandler(accountService usecases.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

// Register
//
// @Summary      Register
// @Description  Creates a new account on the free plan
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RegisterRequestDTO true "Credentials"
// @Success      200      {object}  dto.RegisterResponse
// @Failure      400      {object}  errors.ErrorResponse
// @Failure      409      {object}  errors.ErrorResponse "Email already registered"
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidRequest("Could not parse request body"))
	}

	if err := h.accountService.Register(req.Email, req.Password); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.RegisterResponse{Success: true})
}

// Login
//
// @Summary      Login
// @Description  Checks credentials and returns the account profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequestDTO true "Credentials"
// @Success      200      {object}  dto.LoginResponse
// @Failure      401      {object}  errors.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidRequest("Could not parse request body"))
	}

	account, err := h.accountService.Login(req.Email, req.Password)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(dto.LoginResponse{
		Success: true,
		User: dto.UserInfo{
			Email:           account.Email,
			Plan:            account.Plan,
			VideosProcessed: account.VideosProcessed,
		},
	})
}
