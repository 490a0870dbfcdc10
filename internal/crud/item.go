package crud

import (
	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/internal/models"
	"gorm.io/gorm"
)

type CreateItemParams struct {
	Title       string
	Description string
}

func CreateItem(db *gorm.DB, ownerID uuid.UUID, params CreateItemParams) (*models.Item, error) {
	item := models.Item{
		Title:       params.Title,
		Description: params.Description,
		OwnerID:     ownerID,
	}

	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func GetItemByID(db *gorm.DB, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func ListItemsByOwner(db *gorm.DB, ownerID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	if err := db.Where("owner_id = ?", ownerID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func ListItems(db *gorm.DB) ([]models.Item, error) {
	var items []models.Item
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func UpdateItem(db *gorm.DB, item *models.Item) error {
	return db.Save(item).Error
}

func DeleteItem(db *gorm.DB, item *models.Item) error {
	return db.Delete(item).Error
}
