// Package service implements account registration, login, and the existence
// checks the contract engine uses to validate references. Passwords are
// stored as bcrypt hashes; login issues short-lived signed tokens.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"contractease/internal/account/models"
	"contractease/internal/account/token"
	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/sentinel"
	"contractease/pkg/requestcontext"
)

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Role      string
}

// AccountService manages user and client accounts.
type AccountService struct {
	users   UserStore
	clients ClientStore
	issuer  *token.Issuer
	logger  *slog.Logger
}

// New constructs the account service.
func New(users UserStore, clients ClientStore, issuer *token.Issuer, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &AccountService{
		users:   users,
		clients: clients,
		issuer:  issuer,
		logger:  logger,
	}
}

// RegisterUser creates a user account with a hashed password.
func (s *AccountService) RegisterUser(ctx context.Context, cmd *RegisterCommand) (*models.User, error) {
	hash, err := s.hashPassword(cmd)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           id.NewUserID(),
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: hash,
		CreatedAt:    requestcontext.Now(ctx),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, wrapRegisterErr(err)
	}
	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// RegisterClient creates a client account with a hashed password.
func (s *AccountService) RegisterClient(ctx context.Context, cmd *RegisterCommand) (*models.Client, error) {
	hash, err := s.hashPassword(cmd)
	if err != nil {
		return nil, err
	}
	client := &models.Client{
		ID:           id.NewClientID(),
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: hash,
		CreatedAt:    requestcontext.Now(ctx),
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, wrapRegisterErr(err)
	}
	s.logger.InfoContext(ctx, "client registered", "client_id", client.ID)
	return client, nil
}

// LoginUser verifies user credentials and issues a session token. Unknown
// email and wrong password produce the same error so login attempts cannot
// probe for registered addresses.
func (s *AccountService) LoginUser(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, loginErr(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}
	return s.issueSession(ctx, user.ID.String(), token.RoleUser)
}

// LoginClient verifies client credentials and issues a session token.
func (s *AccountService) LoginClient(ctx context.Context, email, password string) (*Session, error) {
	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return nil, loginErr(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}
	return s.issueSession(ctx, client.ID.String(), token.RoleClient)
}

// GetUser retrieves a user account.
func (s *AccountService) GetUser(ctx context.Context, userID id.UserID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapLookupErr(err, "user not found")
	}
	return user, nil
}

// GetClient retrieves a client account.
func (s *AccountService) GetClient(ctx context.Context, clientID id.ClientID) (*models.Client, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, wrapLookupErr(err, "client not found")
	}
	return client, nil
}

// GetClientByEmail retrieves a client account by email.
func (s *AccountService) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrapLookupErr(err, "client not found")
	}
	return client, nil
}

// UserExists reports whether a user account exists.
func (s *AccountService) UserExists(ctx context.Context, userID id.UserID) (bool, error) {
	return s.users.Exists(ctx, userID)
}

// ClientExists reports whether a client account exists.
func (s *AccountService) ClientExists(ctx context.Context, clientID id.ClientID) (bool, error) {
	return s.clients.Exists(ctx, clientID)
}

func (s *AccountService) hashPassword(cmd *RegisterCommand) (string, error) {
	if cmd == nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "command is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	return string(hash), nil
}

func (s *AccountService) issueSession(ctx context.Context, subject, role string) (*Session, error) {
	signed, expiresAt, err := s.issuer.Issue(subject, role, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	return &Session{Token: signed, ExpiresAt: expiresAt, Role: role}, nil
}

func wrapRegisterErr(err error) error {
	if errors.Is(err, sentinel.ErrConflict) {
		return dErrors.New(dErrors.CodeConflict, "email already registered")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to create account")
}

func wrapLookupErr(err error, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, message)
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "account store unavailable")
}

func loginErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return invalidCredentials()
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "account store unavailable")
}

func invalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
}
