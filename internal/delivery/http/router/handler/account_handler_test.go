package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	"passport/internal/delivery/http/validator"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAccountUsecase struct {
	mock.Mock
}

var _ usecase.AccountUsecase = (*mockAccountUsecase)(nil)

func (m *mockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	args := m.Called(ctx, input)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *mockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.LoginOutput)

	return output, args.Error(1)
}

func (m *mockAccountUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *mockAccountUsecase) ListAll(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func (m *mockAccountUsecase) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	args := m.Called(ctx, id, input)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *mockAccountUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// newTestRouter wires the handler into a minimal Echo instance with the same
// validator and error handler the real server installs.
func newTestRouter(uc usecase.AccountUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAccountHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/admin/accounts", h.ListAccounts)
	e.GET("/admin/accounts/:id", h.GetAccount)
	e.PATCH("/admin/accounts/:id", h.UpdateAccount)
	e.DELETE("/admin/accounts/:id", h.DeleteAccount)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestAccountHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates an account and never echoes the credential", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		created := &entity.Account{
			ID:       uuid.New(),
			Email:    "alice@example.com",
			FullName: "Alice Liddell",
			Role:     entity.RoleUser,
		}
		uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Email == "alice@example.com" && input.Password == "s3cret-pass"
		})).Return(created, nil)

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/register",
			`{"email":"alice@example.com","password":"s3cret-pass","fullName":"Alice Liddell"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "s3cret-pass")

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", data["email"])
		assert.Equal(t, "user", data["role"])
		uc.AssertExpectations(t)
	})

	t.Run("renders a duplicate email as forbidden", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrEmailTaken.WrapMessage("account registration failed"))

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/register",
			`{"email":"alice@example.com","password":"s3cret-pass"}`)

		require.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "EMAIL_ALREADY_IN_USE", resp.Error.Code)
		assert.Equal(t, "email already in use", resp.Message)
	})

	t.Run("rejects a payload without a password", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/register",
			`{"email":"alice@example.com"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/register",
			`{"email":"not-an-email","password":"s3cret-pass"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("hides untyped failures behind a generic 500", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: connection reset by peer"))

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/register",
			`{"email":"alice@example.com","password":"s3cret-pass"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "internal server error", resp.Message)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestAccountHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns a session token with the projected account", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		account := &entity.Account{
			ID:    uuid.New(),
			Email: "alice@example.com",
			Role:  entity.RoleUser,
		}
		uc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input.Email == "alice@example.com" && input.Password == "s3cret-pass"
		})).Return(&usecase.LoginOutput{Token: "signed.jwt.token", Account: account}, nil)

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/login",
			`{"email":"alice@example.com","password":"s3cret-pass"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "signed.jwt.token", data["token"])

		accountData, ok := data["account"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", accountData["email"])
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("renders an unknown email as not found", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		uc.On("Login", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrAccountNotFound.WrapMessage("login failed"))

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/login",
			`{"email":"ghost@example.com","password":"whatever"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "ACCOUNT_NOT_FOUND", resp.Error.Code)
	})

	t.Run("renders a wrong password as unauthorized", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		uc.On("Login", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

		rec := doJSON(newTestRouter(uc), http.MethodPost, "/auth/login",
			`{"email":"alice@example.com","password":"wrong-pass"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	})
}

func TestAccountHandler_GetAccount(t *testing.T) {
	t.Parallel()

	t.Run("returns the account", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		accountID := uuid.New()
		uc.On("GetByID", mock.Anything, accountID).
			Return(&entity.Account{ID: accountID, Email: "alice@example.com", Role: entity.RoleUser}, nil)

		rec := doJSON(newTestRouter(uc), http.MethodGet, "/admin/accounts/"+accountID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, accountID.String(), data["id"])
	})

	t.Run("rejects a malformed id before calling the service", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)

		rec := doJSON(newTestRouter(uc), http.MethodGet, "/admin/accounts/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("renders an unknown id as not found", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		accountID := uuid.New()
		uc.On("GetByID", mock.Anything, accountID).
			Return(nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed"))

		rec := doJSON(newTestRouter(uc), http.MethodGet, "/admin/accounts/"+accountID.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	t.Parallel()

	uc := new(mockAccountUsecase)
	uc.On("ListAll", mock.Anything).Return([]*entity.Account{
		{ID: uuid.New(), Email: "alice@example.com", Role: entity.RoleUser},
		{ID: uuid.New(), Email: "bob@example.com", Role: entity.RoleAdmin},
	}, nil)

	rec := doJSON(newTestRouter(uc), http.MethodGet, "/admin/accounts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Parallel()

	t.Run("forwards only the provided fields", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		accountID := uuid.New()
		updated := &entity.Account{ID: accountID, Email: "alice@example.com", FullName: "Alice in Wonderland", Role: entity.RoleUser}
		uc.On("Update", mock.Anything, accountID, mock.MatchedBy(func(input *usecase.UpdateAccountInput) bool {
			return input.FullName != nil && *input.FullName == "Alice in Wonderland" &&
				input.Email == nil && input.Password == nil && input.Role == nil
		})).Return(updated, nil)

		rec := doJSON(newTestRouter(uc), http.MethodPatch, "/admin/accounts/"+accountID.String(),
			`{"fullName":"Alice in Wonderland"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("renders an email collision as forbidden", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		accountID := uuid.New()
		uc.On("Update", mock.Anything, accountID, mock.Anything).
			Return(nil, domainerrors.ErrEmailTaken.WrapMessage("account update failed"))

		rec := doJSON(newTestRouter(uc), http.MethodPatch, "/admin/accounts/"+accountID.String(),
			`{"email":"bob@example.com"}`)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects a short replacement password", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		accountID := uuid.New()

		rec := doJSON(newTestRouter(uc), http.MethodPatch, "/admin/accounts/"+accountID.String(),
			`{"password":"abc"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	t.Parallel()

	t.Run("deletes and echoes the id", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		accountID := uuid.New()
		uc.On("Delete", mock.Anything, accountID).Return(nil)

		rec := doJSON(newTestRouter(uc), http.MethodDelete, "/admin/accounts/"+accountID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, accountID.String(), data["id"])
	})

	t.Run("renders an unknown id as not found", func(t *testing.T) {
		t.Parallel()

		uc := new(mockAccountUsecase)
		accountID := uuid.New()
		uc.On("Delete", mock.Anything, accountID).
			Return(domainerrors.ErrAccountNotFound.WrapMessage("account deletion failed"))

		rec := doJSON(newTestRouter(uc), http.MethodDelete, "/admin/accounts/"+accountID.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	rec := doJSON(newTestRouter(new(mockAccountUsecase)), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}
