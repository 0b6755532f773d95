package provider

import (
	"context"
	"fmt"
	"time"

	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Register creates a new provider account, issues a token, and stores its
// hash in the auth cache for revocation checks.
func (s *DefaultProviderService) Register(provider models.Provider) (*AuthResponse, error) {
	if provider.Email == "" || provider.Password == "" {
		return nil, fmt.Errorf("provider email and password are required")
	}
	if provider.Name == "" {
		return nil, fmt.Errorf("provider name is required")
	}
	for _, w := range provider.WorkingWindows {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("invalid working window: %w", err)
		}
	}

	existing, err := s.Repo.GetByEmail(provider.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing provider: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("provider with email %s already exists", provider.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(provider.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	provider.PasswordHash = string(hashedPassword)
	provider.Password = ""

	provider.ID = uuid.New().String()
	provider.CompletedServices = 0
	now := time.Now().UTC()
	provider.CreatedAt = now
	provider.UpdatedAt = now

	if err := s.Repo.Create(&provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	token, err := issueToken(provider.ID, "provider")
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: provider.ID, Name: provider.Name, Email: provider.Email, Token: token}, nil
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultProviderService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	provider, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(provider.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := issueToken(provider.ID, "provider")
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: provider.ID, Name: provider.Name, Email: provider.Email, Token: token}, nil
}

// issueToken mints a JWT and caches its hash so middleware can reject
// revoked or superseded tokens.
func issueToken(id, role string) (string, error) {
	token, err := utils.GenerateToken(id, role, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + role + ":" + id
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache auth token: %w", err)
	}
	return token, nil
}

func (s *DefaultProviderService) GetByID(id string) (*models.Provider, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultProviderService) GetAll() ([]models.Provider, error) {
	return s.Repo.GetAll()
}

// Update applies profile changes as a single field-level patch, so
// concurrent counter increments on the same document are never overwritten.
// The completed-services counter and the rating are not writable through
// this path.
func (s *DefaultProviderService) Update(provider *models.Provider) (*models.Provider, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if provider.Name != "" {
		set["name"] = provider.Name
	}
	if provider.Bio != "" {
		set["bio"] = provider.Bio
	}
	if provider.PhotoURL != "" {
		set["photoUrl"] = provider.PhotoURL
	}
	if provider.ServiceIDs != nil {
		set["serviceIds"] = provider.ServiceIDs
	}

	if err := s.Repo.UpdateWithDocument(provider.ID, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(provider.ID)
}

func (s *DefaultProviderService) Delete(id string) error {
	return s.Repo.Delete(id)
}
