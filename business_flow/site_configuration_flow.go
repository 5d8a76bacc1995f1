package businessflow

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/models"
	"github.com/gmwtech/corporate-site/repository"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SiteConfigurationFlow defines operations for key-value site settings
type SiteConfigurationFlow interface {
	CreateSetting(ctx context.Context, req *dto.SiteConfigurationCreate, metadata *ClientMetadata) (*dto.SiteConfigurationItem, error)
	UpdateSetting(ctx context.Context, key string, req *dto.SiteConfigurationUpdate, metadata *ClientMetadata) (*dto.SiteConfigurationItem, error)
	GetSetting(ctx context.Context, key string) (*dto.SiteConfigurationItem, error)
	ListSettings(ctx context.Context, category *string) (*dto.ListSiteConfigurationResponse, error)
	DeleteSetting(ctx context.Context, key string) error
	PublicConfig(ctx context.Context) (*dto.PublicConfigResponse, error)
}

// SiteConfigurationFlowImpl implements SiteConfigurationFlow.
// The cache client is optional; a nil client disables caching.
type SiteConfigurationFlowImpl struct {
	configRepo repository.SiteConfigurationRepository
	cache      *redis.Client
	db         *gorm.DB
}

// NewSiteConfigurationFlow creates a new site configuration flow
func NewSiteConfigurationFlow(configRepo repository.SiteConfigurationRepository, cache *redis.Client, db *gorm.DB) SiteConfigurationFlow {
	return &SiteConfigurationFlowImpl{
		configRepo: configRepo,
		cache:      cache,
		db:         db,
	}
}

func (f *SiteConfigurationFlowImpl) CreateSetting(ctx context.Context, req *dto.SiteConfigurationCreate, metadata *ClientMetadata) (*dto.SiteConfigurationItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	valueType := req.ValueType
	if valueType == "" {
		valueType = models.ConfigValueTypeString
	}
	if !models.ValidConfigValueType(valueType) {
		return nil, NewValidationError("invalid configuration value type", ErrInvalidValueType)
	}
	if err := checkConfigValue(req.Value, valueType); err != nil {
		return nil, err
	}

	item, err := runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.SiteConfigurationItem, error) {
		exists, err := f.configRepo.Exists(ctx, models.SiteConfigurationFilter{Key: &req.Key})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, NewConflictError("configuration key already exists", ErrConfigKeyAlreadyExists)
		}

		setting := models.SiteConfiguration{
			Key:         req.Key,
			Value:       req.Value,
			ValueType:   valueType,
			Description: req.Description,
			Category:    req.Category,
			IsPublic:    req.IsPublic,
		}

		if err := f.configRepo.Save(ctx, &setting); err != nil {
			if repository.IsDuplicate(err) {
				return nil, NewConflictError("configuration key already exists", ErrConfigKeyAlreadyExists)
			}
			return nil, err
		}

		return ToSiteConfigurationItem(&setting), nil
	})
	if err != nil {
		return nil, err
	}

	f.invalidatePublicCache(ctx)
	return item, nil
}

func (f *SiteConfigurationFlowImpl) UpdateSetting(ctx context.Context, key string, req *dto.SiteConfigurationUpdate, metadata *ClientMetadata) (*dto.SiteConfigurationItem, error) {
	if req == nil {
		return nil, NewValidationError("request is required", nil)
	}

	if req.ValueType != nil && !models.ValidConfigValueType(*req.ValueType) {
		return nil, NewValidationError("invalid configuration value type", ErrInvalidValueType)
	}

	item, err := runInTransaction(ctx, f.db, func(ctx context.Context) (*dto.SiteConfigurationItem, error) {
		setting, err := f.configRepo.ByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if setting == nil {
			return nil, NewNotFoundError("site configuration not found", ErrConfigurationNotFound)
		}

		if req.Value != nil {
			setting.Value = *req.Value
		}
		if req.ValueType != nil {
			setting.ValueType = *req.ValueType
		}
		if err := checkConfigValue(setting.Value, setting.ValueType); err != nil {
			return nil, err
		}
		if req.Description != nil {
			setting.Description = *req.Description
		}
		if req.Category != nil {
			setting.Category = *req.Category
		}
		if req.IsPublic != nil {
			setting.IsPublic = req.IsPublic
		}

		if err := f.configRepo.Update(ctx, setting); err != nil {
			return nil, err
		}

		return ToSiteConfigurationItem(setting), nil
	})
	if err != nil {
		return nil, err
	}

	f.invalidatePublicCache(ctx)
	return item, nil
}

func (f *SiteConfigurationFlowImpl) GetSetting(ctx context.Context, key string) (*dto.SiteConfigurationItem, error) {
	setting, err := f.configRepo.ByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, NewNotFoundError("site configuration not found", ErrConfigurationNotFound)
	}
	return ToSiteConfigurationItem(setting), nil
}

func (f *SiteConfigurationFlowImpl) ListSettings(ctx context.Context, category *string) (*dto.ListSiteConfigurationResponse, error) {
	filter := models.SiteConfigurationFilter{Category: category}

	settings, err := f.configRepo.ByFilter(ctx, filter, "key ASC", 0, 0)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SiteConfigurationItem, 0, len(settings))
	for _, setting := range settings {
		items = append(items, *ToSiteConfigurationItem(setting))
	}

	return &dto.ListSiteConfigurationResponse{
		Message: "Site configuration retrieved",
		Items:   items,
	}, nil
}

func (f *SiteConfigurationFlowImpl) DeleteSetting(ctx context.Context, key string) error {
	setting, err := f.configRepo.ByKey(ctx, key)
	if err != nil {
		return err
	}
	if setting == nil {
		return NewNotFoundError("site configuration not found", ErrConfigurationNotFound)
	}

	if err := f.configRepo.Delete(ctx, setting.ID); err != nil {
		return err
	}

	f.invalidatePublicCache(ctx)
	return nil
}

// PublicConfig returns only settings flagged public, served from cache when possible
func (f *SiteConfigurationFlowImpl) PublicConfig(ctx context.Context) (*dto.PublicConfigResponse, error) {
	if f.cache != nil {
		cached, err := f.cache.Get(ctx, utils.PublicConfigCacheKey).Result()
		if err == nil {
			var config map[string]string
			if err := json.Unmarshal([]byte(cached), &config); err == nil {
				return &dto.PublicConfigResponse{
					Message: "Public configuration retrieved",
					Config:  config,
				}, nil
			}
		}
	}

	settings, err := f.configRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	config := make(map[string]string, len(settings))
	for _, setting := range settings {
		config[setting.Key] = setting.Value
	}

	if f.cache != nil {
		if payload, err := json.Marshal(config); err == nil {
			// Cache write failures only cost a later rebuild.
			_ = f.cache.Set(ctx, utils.PublicConfigCacheKey, payload, utils.PublicConfigCacheTTL).Err()
		}
	}

	return &dto.PublicConfigResponse{
		Message: "Public configuration retrieved",
		Config:  config,
	}, nil
}

func (f *SiteConfigurationFlowImpl) invalidatePublicCache(ctx context.Context) {
	if f.cache == nil {
		return
	}
	_ = f.cache.Del(ctx, utils.PublicConfigCacheKey).Err()
}

// checkConfigValue verifies that value parses under the declared value type
func checkConfigValue(value, valueType string) error {
	switch valueType {
	case models.ConfigValueTypeInt:
		if _, err := strconv.Atoi(value); err != nil {
			return NewValidationError("value is not a valid integer", ErrInvalidConfigValue)
		}
	case models.ConfigValueTypeBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return NewValidationError("value is not a valid boolean", ErrInvalidConfigValue)
		}
	case models.ConfigValueTypeJSON:
		if !json.Valid([]byte(value)) {
			return NewValidationError("value is not valid JSON", ErrInvalidConfigValue)
		}
	}
	return nil
}

// ToSiteConfigurationItem converts a setting model to its API representation
func ToSiteConfigurationItem(setting *models.SiteConfiguration) *dto.SiteConfigurationItem {
	return &dto.SiteConfigurationItem{
		ID:          setting.ID,
		Key:         setting.Key,
		Value:       setting.Value,
		ValueType:   setting.ValueType,
		Description: setting.Description,
		Category:    setting.Category,
		IsPublic:    utils.IsTrue(setting.IsPublic),
		UpdatedAt:   formatTime(setting.UpdatedAt),
	}
}
