package repository

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/google/uuid"
)

func validateImage(img *models.Image) error {
	img.FilePath = strings.TrimSpace(img.FilePath)
	if err := requireText("file_path", img.FilePath); err != nil {
		return err
	}
	return maxLength("file_path", img.FilePath, 255)
}

func (s *Store) CreateImage(ctx context.Context, img *models.Image) error {
	if err := validateImage(img); err != nil {
		return err
	}
	return create(ctx, s, img)
}

func (s *Store) GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	return get[models.Image](ctx, s, id)
}

func (s *Store) ListImages(ctx context.Context, page Page) ([]models.Image, error) {
	return list[models.Image](ctx, s, page, "added_at DESC")
}

func (s *Store) UpdateImage(ctx context.Context, img *models.Image) error {
	if err := validateImage(img); err != nil {
		return err
	}
	return update(ctx, s, img)
}

// DeleteImage clears image_id on accounts and roles using it.
func (s *Store) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Image](ctx, s, id)
}
