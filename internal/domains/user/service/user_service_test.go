package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookgallery-backend/internal/domains/user"
	"bookgallery-backend/pkg/jwt"
	"bookgallery-backend/pkg/password"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// fakeHasher scripts verification outcomes so the rehash loop can be
// steered without real bcrypt work.
type fakeHasher struct {
	verifyResults []password.VerificationResult
	verifyCalls   int
	hashCalls     int
}

func (f *fakeHasher) Hash(plaintext string) (string, error) {
	f.hashCalls++
	return "hashed:" + plaintext, nil
}

func (f *fakeHasher) Verify(hash, plaintext string) password.VerificationResult {
	if f.verifyCalls >= len(f.verifyResults) {
		return password.Success
	}
	res := f.verifyResults[f.verifyCalls]
	f.verifyCalls++
	return res
}

func testTokens() *jwt.Manager {
	return jwt.NewManager("test-secret-at-least-32-bytes-long!!", "bookgallery", "bookgallery-clients", 30)
}

func validRegisterCommand() user.CreateUserCommand {
	return user.CreateUserCommand{
		Username:    "ursula",
		Password:    "secret-password",
		FirstName:   "Ursula",
		LastName:    "Le Guin",
		DateOfBirth: time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC),
		Address:     "Portland, Oregon",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := &fakeHasher{}
	svc := NewUserService(repo, hasher, testTokens())

	cmd := validRegisterCommand()
	id := uuid.New()

	repo.On("FindByUsername", mock.Anything, cmd.Username).Return(nil, user.ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.Username == cmd.Username && u.PasswordHash == "hashed:secret-password"
	})).Return(&user.User{
		ID:          id,
		Username:    cmd.Username,
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		DateOfBirth: cmd.DateOfBirth,
		Address:     cmd.Address,
	}, nil)

	res, err := svc.Register(context.Background(), cmd)

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.NotEmpty(t, res.Data.Token)
	assert.Equal(t, id, res.Data.User.ID)
	assert.Equal(t, "ursula", res.Data.User.Username)
	repo.AssertExpectations(t)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &fakeHasher{}, testTokens())

	cmd := validRegisterCommand()
	repo.On("FindByUsername", mock.Anything, cmd.Username).
		Return(&user.User{ID: uuid.New(), Username: cmd.Username}, nil)

	res, err := svc.Register(context.Background(), cmd)

	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.Contains(t, res.Errors, "Username is already taken.")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	// Both failure paths must produce the identical message so the
	// endpoint cannot be used to enumerate usernames.
	unknownRepo := new(mockUserRepository)
	unknownRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, user.ErrUserNotFound)
	svc := NewUserService(unknownRepo, &fakeHasher{}, testTokens())

	resUnknown, err := svc.Login(context.Background(), user.LoginCommand{Username: "ghost", Password: "whatever"})
	require.NoError(t, err)

	wrongRepo := new(mockUserRepository)
	wrongRepo.On("FindByUsername", mock.Anything, "ursula").
		Return(&user.User{ID: uuid.New(), Username: "ursula", PasswordHash: "hashed:other"}, nil)
	svc = NewUserService(wrongRepo, &fakeHasher{verifyResults: []password.VerificationResult{password.Failed}}, testTokens())

	resWrong, err := svc.Login(context.Background(), user.LoginCommand{Username: "ursula", Password: "bad-password"})
	require.NoError(t, err)

	assert.False(t, resUnknown.Succeeded)
	assert.False(t, resWrong.Succeeded)
	assert.Equal(t, resUnknown.Errors, resWrong.Errors)
	assert.Contains(t, resWrong.Errors, "Invalid username or password.")
}

func TestUserService_Login_Success(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &fakeHasher{}, testTokens())

	u := &user.User{
		ID:           uuid.New(),
		Username:     "ursula",
		PasswordHash: "hashed:secret-password",
		FirstName:    "Ursula",
		LastName:     "Le Guin",
	}
	repo.On("FindByUsername", mock.Anything, "ursula").Return(u, nil)

	res, err := svc.Login(context.Background(), user.LoginCommand{Username: "ursula", Password: "secret-password"})

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.NotEmpty(t, res.Data.Token)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Login_RehashesStaleHash(t *testing.T) {
	repo := new(mockUserRepository)
	hasher := &fakeHasher{verifyResults: []password.VerificationResult{
		password.SuccessRehashNeeded, // stored hash is stale
		password.Success,             // first rehash verifies clean
	}}
	svc := NewUserService(repo, hasher, testTokens())

	u := &user.User{ID: uuid.New(), Username: "ursula", PasswordHash: "old-hash"}
	repo.On("FindByUsername", mock.Anything, "ursula").Return(u, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(updated *user.User) bool {
		return updated.PasswordHash == "hashed:secret-password"
	})).Return(nil)

	res, err := svc.Login(context.Background(), user.LoginCommand{Username: "ursula", Password: "secret-password"})

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.Equal(t, 1, hasher.hashCalls)
	repo.AssertExpectations(t)
}

func TestUserService_Login_RehashKeepsFailing(t *testing.T) {
	repo := new(mockUserRepository)
	// The stored hash is stale, and every rehash attempt ends in Failed.
	hasher := &fakeHasher{verifyResults: []password.VerificationResult{
		password.SuccessRehashNeeded,
		password.Failed,
	}}
	svc := NewUserService(repo, hasher, testTokens())

	u := &user.User{ID: uuid.New(), Username: "ursula", PasswordHash: "old-hash"}
	repo.On("FindByUsername", mock.Anything, "ursula").Return(u, nil)

	res, err := svc.Login(context.Background(), user.LoginCommand{Username: "ursula", Password: "secret-password"})

	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.Contains(t, res.Errors, "Could not rehash the password.")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Login_RehashLoopIsBounded(t *testing.T) {
	repo := new(mockUserRepository)
	// Verification never settles; the loop must stop on its own.
	results := []password.VerificationResult{password.SuccessRehashNeeded}
	for i := 0; i < 20; i++ {
		results = append(results, password.SuccessRehashNeeded)
	}
	hasher := &fakeHasher{verifyResults: results}
	svc := NewUserService(repo, hasher, testTokens())

	u := &user.User{ID: uuid.New(), Username: "ursula", PasswordHash: "old-hash"}
	repo.On("FindByUsername", mock.Anything, "ursula").Return(u, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Login(context.Background(), user.LoginCommand{Username: "ursula", Password: "secret-password"})

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.LessOrEqual(t, hasher.hashCalls, maxRehashAttempts+1)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &fakeHasher{}, testTokens())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, user.ErrUserNotFound)

	res, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, res.IsNotFound())
	assert.Contains(t, res.Errors, "User not found.")
}

func TestUserService_GetByID_Success(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, &fakeHasher{}, testTokens())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&user.User{
		ID:       id,
		Username: "ursula",
		Address:  "Portland, Oregon",
	}, nil)

	res, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.Equal(t, "ursula", res.Data.Username)
	assert.Equal(t, "Portland, Oregon", res.Data.Address)
}
