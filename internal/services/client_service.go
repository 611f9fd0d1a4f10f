package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

type ClientService interface {
	CreateClient(ctx context.Context, client *models.OAuthClient) error
	GetClientsByOwner(ctx context.Context, ownerEmail string) ([]models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID, ownerEmail string) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, client *models.OAuthClient) error {
	return s.db.WithContext(ctx).Create(client).Error
}

func (s *clientService) GetClientsByOwner(ctx context.Context, ownerEmail string) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("owner_email = ?", ownerEmail).Order("created_at").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID, ownerEmail string) error {
	result := s.db.WithContext(ctx).Where("id = ? AND owner_email = ?", clientID, ownerEmail).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
