package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/jfuentes/gallery-catalog/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("image not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// Catalog is the durable collection of Image records. All mutations are
// committed before the call returns; no state is cached in memory.
type Catalog struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// CreateIfAbsent inserts a pending image unless one with the same filename
// already exists. Uniqueness is enforced by the index, not a prior lookup,
// so concurrent inserts of the same filename cannot race into duplicates.
func (c *Catalog) CreateIfAbsent(filename string, uploadedAt time.Time) (bool, error) {
	image := models.Image{
		Filename:     filename,
		Status:       models.StatusPending,
		DateUploaded: uploadedAt,
	}

	if err := c.db.Create(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert %s: %w", filename, err)
	}

	return true, nil
}

// ListByStatus returns images newest first. A filter outside the three
// known statuses means "all".
func (c *Catalog) ListByStatus(filter string) ([]models.Image, error) {
	query := c.db.Order("date_uploaded DESC")
	if s := models.Status(filter); s.Valid() {
		query = query.Where("status = ?", s)
	}

	var images []models.Image
	if err := query.Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	return images, nil
}

func (c *Catalog) GetByID(id uint) (models.Image, error) {
	var image models.Image
	if err := c.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return image, ErrNotFound
		}
		return image, err
	}

	return image, nil
}

// UpdateStatus applies a moderation transition. Any status is reachable
// from any other. TrashDate is stamped on a transition to trash and
// cleared on any transition away from it.
func (c *Catalog) UpdateStatus(id uint, status models.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	var trashDate *time.Time
	if status == models.StatusTrash {
		now := time.Now()
		trashDate = &now
	}

	result := c.db.Model(&models.Image{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"trash_date": trashDate,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdatePrice sets the price, or clears it when price is nil.
func (c *Catalog) UpdatePrice(id uint, price *float64) error {
	result := c.db.Model(&models.Image{}).Where("id = ?", id).Update("price", price)
	if result.Error != nil {
		return fmt.Errorf("failed to update price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (c *Catalog) Count() (int64, error) {
	var total int64
	if err := c.db.Model(&models.Image{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}

	return total, nil
}
