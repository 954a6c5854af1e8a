package auth

import (
	"context"
	"testing"
	"time"

	"leadcrm/internal/domain"
	jwtsvc "leadcrm/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "admin@leadcrm.local",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))

	users.On("GetByEmail", mock.Anything, "admin@leadcrm.local").Return(testUser(t, "s3cret"), nil)

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@leadcrm.local",
		Password: "s3cret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))

	users.On("GetByEmail", mock.Anything, "admin@leadcrm.local").Return(testUser(t, "s3cret"), nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@leadcrm.local",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))

	users.On("GetByEmail", mock.Anything, "nobody@leadcrm.local").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@leadcrm.local",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetMe_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))

	users.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetMe(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
