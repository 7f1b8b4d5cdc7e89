package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- testify mocks for the service's collaborators ---

type mockAccountRepository struct {
	mock.Mock
}

var _ repository.AccountRepository = (*mockAccountRepository)(nil)

func (m *mockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *mockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAccountRepository) ListAll(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

var _ service.PasswordHasher = (*mockPasswordHasher)(nil)

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

var _ service.TokenService = (*mockTokenService)(nil)

func (m *mockTokenService) IssueSession(accountID uuid.UUID, email, fullName string, role entity.Role) (string, error) {
	args := m.Called(accountID, email, fullName, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ParseSession(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.SessionClaims)

	return claims, args.Error(1)
}

func (m *mockTokenService) SessionTTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockAccountRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestAccountService() accountServiceFixtures {
	accountRepo := new(mockAccountRepository)
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return accountServiceFixtures{
		service:      NewAccountService(accountRepo, hasher, tokenService, logger),
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}
