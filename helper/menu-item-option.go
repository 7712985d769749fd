package helper

import (
	"errors"
	"fmt"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReconcileOption overwrites an option's names and turns its persisted choices
// into the submitted set. Choices with an id are updated in place first. Choices
// without one then reuse a choice carrying that name after the updates, or are
// created. Choices left out are deleted. Everything runs in one transaction.
func ReconcileOption(db *gorm.DB, optionId uint, input model.UpdateMenuItemOptionInput) (*model.MenuItemOption, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var option model.MenuItemOption
		if err := tx.Preload("Choices").First(&option, optionId).Error; err != nil {
			return notFoundOr(err, constants.OPTION_NOT_FOUND)
		}
		option.Name = input.Name
		option.NameAr = input.NameAr

		current := make(map[uint]*model.MenuItemOptionChoice, len(option.Choices))
		for i := range option.Choices {
			current[option.Choices[i].ID] = &option.Choices[i]
		}

		// id updates first; name reuse below matches the post-update names
		kept := make(map[uint]bool, len(input.Choices))
		for _, in := range input.Choices {
			if in.Id == nil {
				continue
			}
			choice, ok := current[*in.Id]
			if !ok {
				return utils.NotFound(constants.CHOICE_NOT_FOUND, fmt.Errorf("choice %d is not part of option %d", *in.Id, option.ID))
			}
			choice.Name = in.Name
			choice.NameAr = in.NameAr
			if err := tx.Save(choice).Error; err != nil {
				return err
			}
			kept[choice.ID] = true
		}

		byName := choicesByName(option.Choices, kept)
		for _, in := range input.Choices {
			if in.Id != nil {
				continue
			}
			if id, ok := byName[in.Name]; ok {
				kept[id] = true
				continue
			}
			choice := model.MenuItemOptionChoice{
				MenuItemOptionId: option.ID,
				Name:             in.Name,
				NameAr:           in.NameAr,
			}
			if err := tx.Create(&choice).Error; err != nil {
				return err
			}
			byName[choice.Name] = choice.ID
			kept[choice.ID] = true
		}

		for _, choice := range option.Choices {
			if kept[choice.ID] {
				continue
			}
			if err := tx.Delete(&model.MenuItemOptionChoice{}, choice.ID).Error; err != nil {
				return err
			}
			if option.DefaultChoiceId != nil && *option.DefaultChoiceId == choice.ID {
				option.DefaultChoiceId = nil
			}
		}

		if input.DefaultChoice != nil {
			defaultId, err := resolveDefaultChoice(tx, option.ID, *input.DefaultChoice)
			if err != nil {
				return err
			}
			option.DefaultChoiceId = &defaultId
		}

		// choices were written one by one above; saving them again would revive deleted rows
		return tx.Omit(clause.Associations).Save(&option).Error
	})
	if err != nil {
		return nil, err
	}
	return GetOptionById(db, optionId)
}

// CreateOption creates an option on a menu item together with its choices.
// Without an explicit default the first submitted choice becomes the default.
// When input names an existing option it is linked instead.
func CreateOption(db *gorm.DB, menuItemId uint, input model.CreateMenuItemOptionInput) (*model.MenuItemOption, error) {
	if input.MenuItemOptionId != nil {
		return LinkOption(db, menuItemId, *input.MenuItemOptionId)
	}

	var optionId uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var item model.MenuItem
		if err := tx.First(&item, menuItemId).Error; err != nil {
			return notFoundOr(err, constants.MENU_ITEM_NOT_FOUND)
		}

		option := model.MenuItemOption{Name: input.Name, NameAr: input.NameAr}
		if err := tx.Omit(clause.Associations).Create(&option).Error; err != nil {
			return err
		}
		if err := tx.Model(&item).Association("Options").Append(&option); err != nil {
			return err
		}
		optionId = option.ID

		var first *model.MenuItemOptionChoice
		for _, in := range input.Choices {
			choice, err := findOrCreateChoice(tx, option.ID, in.Name, in.NameAr)
			if err != nil {
				return err
			}
			if first == nil {
				first = choice
			}
		}

		var defaultId *uint
		if input.DefaultChoice != nil {
			id, err := resolveDefaultChoice(tx, option.ID, *input.DefaultChoice)
			if err != nil {
				return err
			}
			defaultId = &id
		} else if first != nil {
			defaultId = &first.ID
		}
		if defaultId == nil {
			return nil
		}
		return tx.Model(&model.MenuItemOption{}).Where("id = ?", option.ID).Update("default_choice_id", *defaultId).Error
	})
	if err != nil {
		return nil, err
	}
	return GetOptionById(db, optionId)
}

// LinkOption shares an existing option with another menu item.
func LinkOption(db *gorm.DB, menuItemId, optionId uint) (*model.MenuItemOption, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		item, option, err := loadItemAndOption(tx, menuItemId, optionId)
		if err != nil {
			return err
		}
		linked, err := isOptionLinked(tx, item, option.ID)
		if err != nil {
			return err
		}
		if linked {
			return utils.Conflict(constants.OPTION_ALREADY_LINKED, nil)
		}
		return tx.Model(item).Association("Options").Append(option)
	})
	if err != nil {
		return nil, err
	}
	return GetOptionById(db, optionId)
}

// UnlinkOption removes the connection between a menu item and an option. The
// option and its choices are left in place.
func UnlinkOption(db *gorm.DB, menuItemId, optionId uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		item, option, err := loadItemAndOption(tx, menuItemId, optionId)
		if err != nil {
			return err
		}
		linked, err := isOptionLinked(tx, item, option.ID)
		if err != nil {
			return err
		}
		if !linked {
			return utils.NotFound(constants.OPTION_NOT_LINKED, nil)
		}
		return tx.Model(item).Association("Options").Delete(option)
	})
}

// DeleteOption deletes an option and its choices once no menu item uses it.
func DeleteOption(db *gorm.DB, optionId uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var option model.MenuItemOption
		if err := tx.First(&option, optionId).Error; err != nil {
			return notFoundOr(err, constants.OPTION_NOT_FOUND)
		}
		if links := tx.Model(&option).Association("MenuItems").Count(); links > 0 {
			return utils.Conflict(constants.OPTION_STILL_LINKED, fmt.Errorf("option %d is used by %d menu items", option.ID, links))
		}
		if err := tx.Where("menu_item_option_id = ?", option.ID).Delete(&model.MenuItemOptionChoice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&option).Error
	})
}

func GetOptionById(db *gorm.DB, optionId uint) (*model.MenuItemOption, error) {
	var option model.MenuItemOption
	err := db.
		Preload("Choices", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&option, optionId).Error
	if err != nil {
		return nil, notFoundOr(err, constants.OPTION_NOT_FOUND)
	}
	return &option, nil
}

// choicesByName indexes choices by their current name. Rows claimed by id win
// over unclaimed rows carrying the same name.
func choicesByName(choices []model.MenuItemOptionChoice, claimed map[uint]bool) map[string]uint {
	byName := make(map[string]uint, len(choices))
	for _, choice := range choices {
		if claimed[choice.ID] {
			if _, ok := byName[choice.Name]; !ok {
				byName[choice.Name] = choice.ID
			}
		}
	}
	for _, choice := range choices {
		if _, ok := byName[choice.Name]; !ok {
			byName[choice.Name] = choice.ID
		}
	}
	return byName
}

// findOrCreateChoice reuses a choice with the same name on the option so a
// resubmitted value does not end up twice.
func findOrCreateChoice(tx *gorm.DB, optionId uint, name, nameAr string) (*model.MenuItemOptionChoice, error) {
	var choice model.MenuItemOptionChoice
	err := tx.Where("menu_item_option_id = ? AND name = ?", optionId, name).First(&choice).Error
	if err == nil {
		return &choice, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	choice = model.MenuItemOptionChoice{
		MenuItemOptionId: optionId,
		Name:             name,
		NameAr:           nameAr,
	}
	if err := tx.Create(&choice).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

// resolveDefaultChoice returns the id of the default choice, which always
// belongs to optionId.
func resolveDefaultChoice(tx *gorm.DB, optionId uint, in model.DefaultChoiceInput) (uint, error) {
	if in.Id != nil {
		var choice model.MenuItemOptionChoice
		err := tx.Where("id = ? AND menu_item_option_id = ?", *in.Id, optionId).First(&choice).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, utils.NotFound(constants.CHOICE_NOT_FOUND, fmt.Errorf("choice %d is not part of option %d", *in.Id, optionId))
			}
			return 0, err
		}
		return choice.ID, nil
	}

	choice, err := findOrCreateChoice(tx, optionId, in.Name, in.NameAr)
	if err != nil {
		return 0, err
	}
	return choice.ID, nil
}

func loadItemAndOption(tx *gorm.DB, menuItemId, optionId uint) (*model.MenuItem, *model.MenuItemOption, error) {
	var item model.MenuItem
	if err := tx.First(&item, menuItemId).Error; err != nil {
		return nil, nil, notFoundOr(err, constants.MENU_ITEM_NOT_FOUND)
	}
	var option model.MenuItemOption
	if err := tx.First(&option, optionId).Error; err != nil {
		return nil, nil, notFoundOr(err, constants.OPTION_NOT_FOUND)
	}
	return &item, &option, nil
}

func isOptionLinked(tx *gorm.DB, item *model.MenuItem, optionId uint) (bool, error) {
	var options []model.MenuItemOption
	if err := tx.Model(item).Where("menu_item_options.id = ?", optionId).Association("Options").Find(&options); err != nil {
		return false, err
	}
	return len(options) > 0, nil
}
