// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Role           string `json:"role" validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateAccountRequest carries a partial update; nil means "leave unchanged".
type updateAccountRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=6"`
	FullName       *string `json:"fullName"`
	PhoneNumber    *string `json:"phoneNumber"`
	Username       *string `json:"username"`
	ProfilePicture *string `json:"profilePicture"`
	Role           *string `json:"role" validate:"omitempty,oneof=user admin"`
}

// --- Response DTOs ---

// AccountResponse is the outward projection of an account. The credential
// hash is structurally absent; optional attributes render as null when unset.
type AccountResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       *string   `json:"fullName"`
	PhoneNumber    *string   `json:"phoneNumber"`
	Username       *string   `json:"username"`
	ProfilePicture *string   `json:"profilePicture"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LoginResponse bundles the session token with the projected account.
type LoginResponse struct {
	Token   string           `json:"token"`
	Account *AccountResponse `json:"account"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	if account == nil {
		return nil
	}

	return &AccountResponse{
		ID:             account.ID,
		Email:          account.Email,
		FullName:       nullable(account.FullName),
		PhoneNumber:    nullable(account.PhoneNumber),
		Username:       nullable(account.Username),
		ProfilePicture: nullable(account.ProfilePicture),
		Role:           account.Role.String(),
		CreatedAt:      account.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Username:       req.Username,
		ProfilePicture: req.ProfilePicture,
		Role:           entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "User registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:   output.Token,
		Account: toAccountResponse(output.Account),
	}, "Login successful")
}

// ListAccounts handles the request to list every account.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	projected := make([]*AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		projected = append(projected, toAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, projected, "Users retrieved successfully")
}

// GetAccount handles the request to fetch a single account by ID.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	account, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "User retrieved successfully")
}

// UpdateAccount handles the partial-update request.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateAccountInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Username:       req.Username,
		ProfilePicture: req.ProfilePicture,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	account, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "User updated successfully")
}

// DeleteAccount handles the deletion request.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "User deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
