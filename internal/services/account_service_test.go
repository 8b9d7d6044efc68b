package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderlens/internal/models/db_models"
	"wanderlens/internal/models/request_models"
	"wanderlens/pkg/utils"
)

func TestValidateSignUp(t *testing.T) {
	err := ValidateSignUp(request_models.SignUpRequest{
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
	})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name is required", verr.Fields["name"])
	assert.Equal(t, "Email is invalid", verr.Fields["email"])
	assert.Equal(t, "Password must be at least 8 characters", verr.Fields["password"])
	assert.Equal(t, "Passwords do not match", verr.Fields["confirmPassword"])
	assert.Contains(t, verr.Fields, "travelStyle")

	assert.NoError(t, ValidateSignUp(request_models.SignUpRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		TravelStyle:     "cultural",
	}))
}

func TestValidateLogin(t *testing.T) {
	var verr *utils.ValidationError
	require.ErrorAs(t, ValidateLogin(request_models.LoginRequest{Email: "a@b", Password: "12345"}), &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Equal(t, "Password must be at least 6 characters", verr.Fields["password"])

	assert.NoError(t, ValidateLogin(request_models.LoginRequest{Email: "a@b.co", Password: "123456"}))
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := &mockAccountRepo{}
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	svc := NewAccountService(repo, issuer, zap.NewNop())
	ctx := context.Background()

	var stored *db_models.Account
	repo.On("FindByEmail", "asha@example.com").Return(nil, nil).Once()
	repo.On("InsertTx", mock.AnythingOfType("*db_models.Account")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*db_models.Account)
		stored.ID = uuid.New()
	}).Return(nil)

	created, err := svc.CreateAccount(request_models.SignUpRequest{
		Name:            " Asha ",
		Email:           "Asha@Example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		TravelStyle:     "cultural",
	}, ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Asha", stored.Name)
	assert.Equal(t, db_models.RoleUser, stored.Role)
	assert.NotEqual(t, "longenough", stored.PasswordHash)
	assert.Equal(t, stored.ID.String(), created.Account.ID)

	claims, err := issuer.ValidateToken(created.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims.UserID)

	repo.On("FindByEmail", "asha@example.com").Return(stored, nil)

	_, err = svc.CreateAccount(request_models.SignUpRequest{
		Name: "Asha", Email: "asha@example.com", Password: "longenough", ConfirmPassword: "longenough", TravelStyle: "cultural",
	}, ctx)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	logged, err := svc.Login(request_models.LoginRequest{Email: "asha@example.com", Password: "longenough"}, ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)

	_, err = svc.Login(request_models.LoginRequest{Email: "asha@example.com", Password: "wrongpass"}, ctx)
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCreateAccount_PasswordTooLong(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := NewAccountService(repo, utils.NewTokenIssuer("s", time.Hour), zap.NewNop())
	long := strings.Repeat("p", 80)

	_, err := svc.CreateAccount(request_models.SignUpRequest{
		Name: "Asha", Email: "asha@example.com", Password: long, ConfirmPassword: long, TravelStyle: "cultural",
	}, context.Background())

	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password must be at most 72 bytes", verr.Fields["password"])
	assert.NotErrorIs(t, err, utils.ErrDatabaseError)
	repo.AssertNotCalled(t, "InsertTx", mock.Anything)

	exact := strings.Repeat("p", 72)
	assert.NoError(t, ValidateSignUp(request_models.SignUpRequest{
		Name: "Asha", Email: "asha@example.com", Password: exact, ConfirmPassword: exact, TravelStyle: "cultural",
	}))
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockAccountRepo{}
	repo.On("FindByEmail", "ghost@example.com").Return(nil, nil)
	svc := NewAccountService(repo, utils.NewTokenIssuer("s", time.Hour), zap.NewNop())

	_, err := svc.Login(request_models.LoginRequest{Email: "ghost@example.com", Password: "whatever"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	repo := &mockAccountRepo{}
	id := uuid.New()
	repo.On("FindById", id.String()).Return(&db_models.Account{BaseModel: db_models.BaseModel{ID: id}, Name: "Asha", Role: "user"}, nil)
	repo.On("FindById", "missing").Return(nil, nil)
	svc := NewAccountService(repo, utils.NewTokenIssuer("s", time.Hour), zap.NewNop())

	p, err := svc.GetProfile(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.Name)

	_, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
