package helper

import (
	"fmt"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueMenuSlug slugifies name and appends a counter until no menu
// uses the result.
func GenerateUniqueMenuSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "menu"
	}
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Menu{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

// GetMenuBySlug loads a menu with its available items and their options.
func GetMenuBySlug(db *gorm.DB, menuSlug string) (*model.Menu, error) {
	var menu model.Menu
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("id")
		}).
		Preload("Items.Options", func(db *gorm.DB) *gorm.DB { return db.Order("menu_item_options.id") }).
		Preload("Items.Options.Choices", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("slug = ?", menuSlug).
		First(&menu).Error
	if err != nil {
		return nil, notFoundOr(err, constants.MENU_NOT_FOUND)
	}
	return &menu, nil
}
