package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"wanderlens/internal/models/db_models"
	"wanderlens/internal/models/request_models"
	"wanderlens/internal/models/response_models"
	"wanderlens/internal/repositories"
	"wanderlens/pkg/utils"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const (
	minSignupPasswordLen = 8
	minLoginPasswordLen  = 6
	// bcrypt only hashes the first 72 bytes and refuses anything longer.
	maxPasswordBytes = 72
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AuthResponse, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func ValidateSignUp(r request_models.SignUpRequest) error {
	v := utils.NewValidationError()
	if strings.TrimSpace(r.Name) == "" {
		v.Add("name", "Name is required")
	}
	switch {
	case strings.TrimSpace(r.Email) == "":
		v.Add("email", "Email is required")
	case !emailPattern.MatchString(r.Email):
		v.Add("email", "Email is invalid")
	}
	switch {
	case r.Password == "":
		v.Add("password", "Password is required")
	case len(r.Password) < minSignupPasswordLen:
		v.Add("password", "Password must be at least 8 characters")
	case len(r.Password) > maxPasswordBytes:
		v.Add("password", "Password must be at most 72 bytes")
	}
	if r.Password != r.ConfirmPassword {
		v.Add("confirmPassword", "Passwords do not match")
	}
	if strings.TrimSpace(r.TravelStyle) == "" {
		v.Add("travelStyle", "Please select your travel style")
	}
	return v.OrNil()
}

func ValidateLogin(r request_models.LoginRequest) error {
	v := utils.NewValidationError()
	switch {
	case strings.TrimSpace(r.Email) == "":
		v.Add("email", "Email is required")
	case !emailPattern.MatchString(r.Email):
		v.Add("email", "Email is invalid")
	}
	switch {
	case r.Password == "":
		v.Add("password", "Password is required")
	case len(r.Password) < minLoginPasswordLen:
		v.Add("password", "Password must be at least 6 characters")
	}
	return v.OrNil()
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AuthResponse, error) {
	if err := ValidateLogin(request); err != nil {
		return nil, err
	}

	startTime := time.Now()
	account, err := a.accountRepo.FindByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		a.logger.Error("account lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	resp, err := a.issue(account)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("login completed",
		zap.String("account_id", account.ID.String()),
		zap.Duration("took", time.Since(startTime)))
	return resp, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) (*response_models.AuthResponse, error) {
	if err := ValidateSignUp(request); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		TravelStyle:  request.TravelStyle,
		Role:         db_models.RoleUser,
	}
	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		a.logger.Error("failed to create account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("account created", zap.String("account_id", newAccount.ID.String()))
	return a.issue(newAccount)
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) issue(account *db_models.Account) (*response_models.AuthResponse, error) {
	token, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		a.logger.Error("failed to sign token", zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}
	return &response_models.AuthResponse{Token: token, Account: toAccountResponse(account)}, nil
}

func toAccountResponse(a *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Email:       a.Email,
		TravelStyle: a.TravelStyle,
		Role:        a.Role,
	}
}
