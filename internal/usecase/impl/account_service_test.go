package impl

import (
	"context"
	"testing"
	"time"

	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
	"chatline/internal/domain/repository"
	"chatline/internal/domain/service"
	mockRepo "chatline/internal/mocks/repository"
	mockService "chatline/internal/mocks/service"
	"chatline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixture struct {
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	service      usecase.AccountUsecase
}

func newAccountServiceFixture(t *testing.T) *accountServiceFixture {
	t.Helper()

	f := &accountServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}
	f.service = NewAccountService(AccountServiceParams{
		TxManager:    f.txManager,
		AccountRepo:  f.accountRepo,
		SessionRepo:  f.sessionRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestAccountService_Register_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "StrongPass123!",
	}

	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
			txAccountRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
			txAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				RunAndReturn(func(_ context.Context, account *entity.Account) error {
					account.ID = uuid.New()
					return nil
				})

			return fn(mockFactory)
		})

	output, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEqual(t, uuid.Nil, output.Account.ID)
	assert.Equal(t, "alice", output.Account.Username)
	assert.Equal(t, "hashed", output.Account.PasswordHash)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "StrongPass123!",
	}

	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			txAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Bob",
		Username: "bob",
		Email:    "bob@example.com",
		Password: "StrongPass123!",
	}

	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(txAccountRepo)
			txAccountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
			txAccountRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(&entity.Account{ID: uuid.New(), Username: input.Username}, nil)

			return fn(mockFactory)
		})

	output, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Login_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	}
	expiresAt := time.Now().Add(2 * time.Hour)

	f.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	f.hasher.EXPECT().Check("StrongPass123!", "hashed").Return(true)
	f.tokenService.EXPECT().Generate(accountID, "alice", "alice@example.com").Return("signed-token", expiresAt, nil)
	f.tokenService.EXPECT().HashToken("signed-token").Return("token-hash")
	f.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(_ context.Context, session *entity.Session) error {
			assert.Equal(t, accountID, session.AccountID)
			assert.Equal(t, "token-hash", session.TokenHash)
			assert.Equal(t, expiresAt, session.ExpiresAt)
			session.ID = uuid.New()
			return nil
		})

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "StrongPass123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, account, output.Account)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	account := &entity.Account{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	f.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: account.Email, Password: "wrong"})

	assert.Nil(t, output)
	// Same error shape as an unknown email.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Logout(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.tokenService.EXPECT().HashToken("signed-token").Return("token-hash")
	f.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(nil)

	assert.NoError(t, f.service.Logout(ctx, "signed-token"))
}

func TestAccountService_Logout_EmptyToken(t *testing.T) {
	f := newAccountServiceFixture(t)

	// No repository calls expected.
	assert.NoError(t, f.service.Logout(context.Background(), ""))
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: accountID,
		TokenHash: "token-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	claims := &service.Claims{AccountID: accountID, Username: "alice", Email: "alice@example.com"}

	f.tokenService.EXPECT().HashToken("signed-token").Return("token-hash")
	f.sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(session, nil)
	f.tokenService.EXPECT().Validate("signed-token").Return(claims, nil)

	identity, err := f.service.Authenticate(ctx, "signed-token")

	require.NoError(t, err)
	assert.Equal(t, accountID, identity.AccountID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestAccountService_Authenticate_EmptyToken(t *testing.T) {
	f := newAccountServiceFixture(t)

	identity, err := f.service.Authenticate(context.Background(), "")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAccountService_Authenticate_RevokedCredential(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	// A credential missing from the registry is rejected before any
	// signature verification happens.
	f.tokenService.EXPECT().HashToken("signed-token").Return("token-hash")
	f.sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(nil, repository.ErrSessionNotFound)

	identity, err := f.service.Authenticate(ctx, "signed-token")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	f.tokenService.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAccountService_Authenticate_InvalidSignatureDropsSession(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		TokenHash: "token-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.tokenService.EXPECT().HashToken("tampered-token").Return("token-hash")
	f.sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(session, nil)
	f.tokenService.EXPECT().Validate("tampered-token").Return(nil, assert.AnError)
	f.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(nil)

	identity, err := f.service.Authenticate(ctx, "tampered-token")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAccountService_Authenticate_ExpiredSessionDropsSession(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: accountID,
		TokenHash: "token-hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	claims := &service.Claims{AccountID: accountID, Username: "alice", Email: "alice@example.com"}

	f.tokenService.EXPECT().HashToken("signed-token").Return("token-hash")
	f.sessionRepo.EXPECT().FindByTokenHash(ctx, "token-hash").Return(session, nil)
	f.tokenService.EXPECT().Validate("signed-token").Return(claims, nil)
	f.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(nil)

	identity, err := f.service.Authenticate(ctx, "signed-token")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	account := &entity.Account{ID: uuid.New(), Username: "alice"}
	f.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := f.service.GetProfile(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	missingID := uuid.New()
	f.accountRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrAccountNotFound)

	got, err := f.service.GetProfile(ctx, missingID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAccountService_CleanupExpiredSessions(t *testing.T) {
	f := newAccountServiceFixture(t)
	ctx := context.Background()

	f.sessionRepo.EXPECT().DeleteExpired(ctx).Return(int64(3), nil)

	removed, err := f.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
