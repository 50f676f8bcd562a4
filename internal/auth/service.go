package auth

import (
	"context"
	"strings"
	"time"

	"KecPortal/internal/config"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailDomain is the institutional domain every contact address must
// belong to at provisioning time.
const EmailDomain = "@kongu.edu"

// AccountStore is what the services need from the credential store.
// *AccountRepository is the production implementation; tests supply an
// in-memory fake.
type AccountStore interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByUsernameAndRole(ctx context.Context, username, role string) (*Account, error)
	Insert(ctx context.Context, account *Account) error
	All(ctx context.Context) ([]Account, error)
	DeleteByID(ctx context.Context, id string) error
}

type UserService struct {
	store AccountStore
}

func NewUserService(store AccountStore) *UserService {
	return &UserService{store: store}
}

// deriveInitialSecret is the provisioning password policy: a new
// account's first password equals its login identifier. Account holders
// are expected to change it after first login. Swapping this for random
// secrets with a forced reset would not touch the rest of provisioning.
func deriveInitialSecret(username string) string {
	return username
}

func (s *UserService) CreateAccount(ctx context.Context, req CreateUserRequest) (*Account, error) {
	if req.Role == "" || req.Email == "" || req.Username == "" {
		return nil, ErrMissingField
	}
	if req.Role != RoleStudent && req.Role != RoleStaff {
		return nil, ErrInvalidRole
	}
	if !strings.HasSuffix(req.Email, EmailDomain) {
		return nil, ErrInvalidDomain
	}

	// Advisory pre-check; the unique index on username is what actually
	// guarantees no duplicate lands under concurrency.
	existing, err := s.store.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hashed, err := HashPassword(deriveInitialSecret(req.Username))
	if err != nil {
		return nil, err
	}

	account := &Account{
		ID:           primitive.NewObjectID(),
		Role:         req.Role,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Insert(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *UserService) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.store.All(ctx)
}

// DeleteAccount is idempotent: deleting an id that is not present
// succeeds silently. Admin panels retry deletes freely because of this.
func (s *UserService) DeleteAccount(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}

type AuthService struct {
	store  AccountStore
	jwtKey []byte
}

func NewAuthService(store AccountStore, cfg *config.Config) *AuthService {
	return &AuthService{store: store, jwtKey: cfg.JWTSecret}
}

// Authenticate is the single login operation both role-scoped endpoints
// resolve to. A username that exists under a different role is
// indistinguishable from one that does not exist at all.
func (s *AuthService) Authenticate(ctx context.Context, role, identifier, password string) (string, error) {
	account, err := s.store.FindByUsernameAndRole(ctx, identifier, role)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrInvalidIdentifier
	}
	if !CheckPasswordHash(password, account.PasswordHash) {
		return "", ErrIncorrectPassword
	}
	return GenerateJWT(account.ID.Hex(), account.Role, s.jwtKey, TokenValidity)
}
