package client

import (
	"context"
	"fmt"
	"time"

	clientRepo "agendly/database/repository/client"
	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthResponse is returned after registration or authentication.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ClientService manages client accounts.
type ClientService interface {
	Register(client models.Client) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.Client, error)
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

func (s *DefaultClientService) Register(client models.Client) (*AuthResponse, error) {
	if client.Email == "" || client.Password == "" {
		return nil, fmt.Errorf("client email and password are required")
	}
	if client.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}

	existing, err := s.Repo.GetByEmail(client.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing client: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("client with email %s already exists", client.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(client.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	client.PasswordHash = string(hashedPassword)
	client.Password = ""

	client.ID = uuid.New().String()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := s.Repo.Create(&client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	token, err := issueToken(client.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: client.ID, Name: client.Name, Email: client.Email, Token: token}, nil
}

func (s *DefaultClientService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	client, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := issueToken(client.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: client.ID, Name: client.Name, Email: client.Email, Token: token}, nil
}

func issueToken(id string) (string, error) {
	token, err := utils.GenerateToken(id, "client", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + "client:" + id
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache auth token: %w", err)
	}
	return token, nil
}

func (s *DefaultClientService) GetByID(id string) (*models.Client, error) {
	return s.Repo.GetByID(id)
}
