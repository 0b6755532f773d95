package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	serviceRepo "agendly/database/repository/service"
	"agendly/models"
	"agendly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "services:catalog"
	catalogCacheTTL = 10 * time.Minute
)

// CatalogService manages the bookable service catalog. Listing is served
// from a Redis cache; any write invalidates it.
type CatalogService interface {
	Create(service models.Service) (*models.Service, error)
	GetByID(id string) (*models.Service, error)
	List() ([]models.Service, error)
	Update(service *models.Service) (*models.Service, error)
	Delete(id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

func (s *DefaultCatalogService) Create(service models.Service) (*models.Service, error) {
	if service.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if service.DurationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}

	service.ID = uuid.New().String()
	now := time.Now().UTC()
	service.CreatedAt = now
	service.UpdatedAt = now

	if err := s.Repo.Create(&service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	s.invalidateCache()
	return &service, nil
}

func (s *DefaultCatalogService) GetByID(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

// List returns the catalog, preferring the cache. A cache miss or a
// deserialization failure falls through to Mongo and repopulates the cache.
func (s *DefaultCatalogService) List() ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cached, err := utils.GetCacheClient().Get(ctx, catalogCacheKey).Result()
	if err == nil {
		var services []models.Service
		if unmarshalErr := json.Unmarshal([]byte(cached), &services); unmarshalErr == nil {
			return services, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("catalog cache read failed", zap.Error(err))
	}

	services, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(services); marshalErr == nil {
		if setErr := utils.GetCacheClient().Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); setErr != nil {
			utils.GetLogger().Warn("catalog cache write failed", zap.Error(setErr))
		}
	}
	return services, nil
}

func (s *DefaultCatalogService) Update(service *models.Service) (*models.Service, error) {
	existing, err := s.Repo.GetByID(service.ID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	if service.Name != "" {
		existing.Name = service.Name
	}
	if service.Description != "" {
		existing.Description = service.Description
	}
	if service.DurationMinutes > 0 {
		existing.DurationMinutes = service.DurationMinutes
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return existing, nil
}

func (s *DefaultCatalogService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *DefaultCatalogService) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetCacheClient().Del(ctx, catalogCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
