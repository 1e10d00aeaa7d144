package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bookgallery-backend/internal/domains/user"
	"bookgallery-backend/pkg/jwt"
	"bookgallery-backend/pkg/password"
	"bookgallery-backend/pkg/result"
)

// rehash attempts on login before giving up on a stale hash.
const maxRehashAttempts = 5

// userService implements user.Service. Tokens and password hashing are
// injected collaborators; the service owns only the account workflow.
type userService struct {
	repo   user.Repository
	hasher password.Hasher
	tokens *jwt.Manager
}

func NewUserService(repo user.Repository, hasher password.Hasher, tokens *jwt.Manager) user.Service {
	return &userService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates the account and logs the new user straight in. The
// username check and the insert are not atomic; two concurrent
// registrations can race past the check.
func (s *userService) Register(ctx context.Context, cmd user.CreateUserCommand) (result.Of[user.ResponseDto], error) {
	_, err := s.repo.FindByUsername(ctx, cmd.Username)
	if err == nil {
		return result.FailureOf[user.ResponseDto](user.UsernameTakenMessage), nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return result.Of[user.ResponseDto]{}, err
	}

	entity := cmd.ToEntity()
	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return result.Of[user.ResponseDto]{}, err
	}
	entity.PasswordHash = hash

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return result.Of[user.ResponseDto]{}, err
	}

	token, err := s.tokens.GenerateToken(created.ID, created.FirstName, created.LastName)
	if err != nil {
		return result.Of[user.ResponseDto]{}, err
	}

	return result.SuccessData(user.ResponseDto{Token: token, User: created.ToDto()}), nil
}

// Login verifies the password and issues a token. Unknown usernames and
// wrong passwords produce the same failure message. A verification that
// succeeds against a stale hash triggers a rehash which is persisted
// before the token is issued.
func (s *userService) Login(ctx context.Context, cmd user.LoginCommand) (result.Of[user.ResponseDto], error) {
	u, err := s.repo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return result.FailureOf[user.ResponseDto](user.InvalidCredentialsMessage), nil
		}
		return result.Of[user.ResponseDto]{}, err
	}

	switch s.hasher.Verify(u.PasswordHash, cmd.Password) {
	case password.Failed:
		return result.FailureOf[user.ResponseDto](user.InvalidCredentialsMessage), nil
	case password.SuccessRehashNeeded:
		if !s.rehash(u, cmd.Password) {
			return result.FailureOf[user.ResponseDto](user.RehashFailedMessage), nil
		}
		if err := s.repo.Update(ctx, u); err != nil {
			return result.Of[user.ResponseDto]{}, err
		}
	}

	token, err := s.tokens.GenerateToken(u.ID, u.FirstName, u.LastName)
	if err != nil {
		return result.Of[user.ResponseDto]{}, err
	}

	return result.SuccessData(user.ResponseDto{Token: token, User: u.ToDto()}), nil
}

// rehash re-hashes the plaintext until verification stops asking for
// another pass, bounded by maxRehashAttempts. Reports whether the hash
// on u is now verifiable.
func (s *userService) rehash(u *user.User, plaintext string) bool {
	attempts := maxRehashAttempts
	var res password.VerificationResult
	for {
		hash, err := s.hasher.Hash(plaintext)
		if err != nil {
			return false
		}
		u.PasswordHash = hash
		res = s.hasher.Verify(u.PasswordHash, plaintext)
		if res != password.SuccessRehashNeeded || attempts <= 0 {
			break
		}
		attempts--
	}
	return res != password.Failed
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (result.Of[user.Dto], error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return result.NotFoundOf[user.Dto](user.NotFoundMessage), nil
		}
		return result.Of[user.Dto]{}, err
	}

	return result.SuccessData(u.ToDto()), nil
}
