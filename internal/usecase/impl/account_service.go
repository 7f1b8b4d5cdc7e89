// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface. It owns the
// orchestration of registration, login and account CRUD; the repository owns
// physical storage and is the sole reader/writer of persisted state.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the account registration process: uniqueness check,
// credential hashing, then persistence.
//
// The check and the write are not atomic; two concurrent registrations for
// the same email can both pass the check. The unique index on accounts.email
// catches that race at the storage layer and surfaces the same Conflict error.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	srv.log(ctx).Info("Starting account registration", slog.String("email", input.Email))

	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		// An account with this email already exists.
		return nil, domainerrors.ErrEmailTaken.WrapMessage("account registration failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash credential during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("account registration failed")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	newAccount := &entity.Account{
		Email:          input.Email,
		PasswordHash:   hashedPassword,
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		Username:       input.Username,
		ProfilePicture: input.ProfilePicture,
		Role:           role,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		srv.log(ctx).Error("Failed to persist account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Account registered", slog.Any("accountID", newAccount.ID))

	return newAccount, nil
}

// Login authenticates a credential and issues a session token.
//
// An unknown email fails NotFound while a wrong password fails Unauthorized.
// The distinction reveals whether an email is registered; callers wanting
// uniform responses collapse the two at the boundary, not here, so the
// service's semantics stay explicit and testable.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed: credential mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.IssueSession(account.ID, account.Email, account.FullName, account.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// GetByID retrieves a single account.
func (srv *accountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// ListAll returns every account, unordered. Pagination is deliberately absent.
func (srv *accountService) ListAll(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// Update applies a partial update to an existing account. Absent fields are
// left unchanged. An email change re-runs the uniqueness check against the
// new value, excluding the account itself; a credential change re-hashes.
func (srv *accountService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account update failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	if input.Email != nil && *input.Email != account.Email {
		existing, err := srv.accountRepo.FindByEmail(ctx, *input.Email)
		if err == nil && existing.ID != id {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("account update failed")
		}
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(err, "failed to check email uniqueness")
		}
		account.Email = *input.Email
	}

	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash credential during update", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("account update failed")
		}
		account.PasswordHash = hashedPassword
	}

	if input.FullName != nil {
		account.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		account.PhoneNumber = *input.PhoneNumber
	}
	if input.Username != nil {
		account.Username = *input.Username
	}
	if input.ProfilePicture != nil {
		account.ProfilePicture = *input.ProfilePicture
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
		}
		account.Role = *input.Role
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to persist account update", slog.Any("accountID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Debug("Account updated", slog.Any("accountID", id))

	return account, nil
}

// Delete removes an account. The existence precondition runs first so that
// deleting an unknown ID short-circuits with NotFound before any mutation.
func (srv *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.accountRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account deletion failed")
		}

		return errors.Wrap(err, "failed to find account by id")
	}

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account deletion failed")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", id))

	return nil
}
