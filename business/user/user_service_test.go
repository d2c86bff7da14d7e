package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"clientCompass/domain"
	redisrepo "clientCompass/internal/repository/redis"
	"clientCompass/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	created []domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = uint(len(r.created) + 1)
	r.created = append(r.created, *user)
	r.byEmail[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	for _, u := range r.created {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

type fakeTokenStore struct {
	stored map[string]redisrepo.TokenData
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{stored: make(map[string]redisrepo.TokenData)}
}

func (s *fakeTokenStore) StoreToken(ctx context.Context, userID, token string, data redisrepo.TokenData, ttl time.Duration) error {
	s.stored[token] = data
	return nil
}

func (s *fakeTokenStore) ValidateToken(ctx context.Context, token string) (string, error) {
	data, ok := s.stored[token]
	if !ok {
		return "", errors.New("token not found or expired")
	}
	return data.UserID, nil
}

func (s *fakeTokenStore) DeleteToken(ctx context.Context, userID, token string) error {
	delete(s.stored, token)
	return nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New(), newFakeTokenStore())

	created, err := svc.Register(context.Background(), &domain.User{
		FullName: "Ada Analyst",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Empty(t, created.Password)
	assert.Equal(t, RoleAnalyst, created.Role)

	// stored password is a bcrypt hash of the original
	stored := repo.created[0]
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New(), newFakeTokenStore())

	_, err := svc.Register(context.Background(), &domain.User{
		FullName: "Ada", Email: "ada@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &domain.User{
		FullName: "Other", Email: "ada@example.com", Password: "secret456",
	})
	require.Error(t, err)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), validator.New(), newFakeTokenStore())

	_, err := svc.Register(context.Background(), &domain.User{Email: "not-an-email", Password: "secret123"})
	require.Error(t, err)

	_, err = svc.Register(context.Background(), &domain.User{Email: "ok@example.com", Password: "short"})
	require.Error(t, err)
}

func TestLoginAndLogout(t *testing.T) {
	utils.InitJWT("test-secret")

	repo := newFakeUserRepo()
	store := newFakeTokenStore()
	svc := NewUserService(repo, validator.New(), store)

	_, err := svc.Register(context.Background(), &domain.User{
		FullName: "Ada", Email: "ada@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "ada@example.com", "secret123", "127.0.0.1", "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Empty(t, user.Password)

	userID, err := svc.ValidateTokenFromRedis(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)

	require.NoError(t, svc.Logout(context.Background(), user.ID, token))

	_, err = svc.ValidateTokenFromRedis(context.Background(), token)
	require.Error(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	utils.InitJWT("test-secret")

	svc := NewUserService(newFakeUserRepo(), validator.New(), newFakeTokenStore())

	_, err := svc.Register(context.Background(), &domain.User{
		FullName: "Ada", Email: "ada@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong", "", "")
	require.Error(t, err)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret123", "", "")
	require.Error(t, err)
}
