package helper

import (
	"fmt"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetKitchenById(db *gorm.DB, kitchenId uint) (*model.Kitchen, error) {
	var kitchen model.Kitchen
	err := db.
		Preload("OpeningHours", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&kitchen, kitchenId).Error
	if err != nil {
		return nil, notFoundOr(err, constants.KITCHEN_NOT_FOUND)
	}
	return &kitchen, nil
}

// SyncOpeningHours replaces a kitchen's weekly schedule. A day present in the
// input is updated or created, a day missing from it is deleted. A nil list
// leaves the schedule alone so only the flags change.
func SyncOpeningHours(db *gorm.DB, kitchenId uint, input model.UpdateOpeningHoursInput) (*model.Kitchen, error) {
	submitted := make(map[model.DayOfWeek]model.OpeningHourInput, len(input.OpeningHours))
	for _, in := range input.OpeningHours {
		if _, dup := submitted[in.DayOfWeek]; dup {
			return nil, utils.BadRequest(constants.DUPLICATE_OPENING_DAY, fmt.Errorf("%s submitted twice", in.DayOfWeek))
		}
		submitted[in.DayOfWeek] = in
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var kitchen model.Kitchen
		if err := tx.Preload("OpeningHours").First(&kitchen, kitchenId).Error; err != nil {
			return notFoundOr(err, constants.KITCHEN_NOT_FOUND)
		}

		updates := map[string]any{}
		if input.IsOpen != nil {
			updates["is_open"] = *input.IsOpen
		}
		if input.IsWeeklyTimingOn != nil {
			updates["is_weekly_timing_on"] = *input.IsWeeklyTimingOn
		}
		if len(updates) > 0 {
			if err := tx.Model(&kitchen).Updates(updates).Error; err != nil {
				return err
			}
		}

		if input.OpeningHours == nil {
			return nil
		}

		for _, day := range model.Weekdays {
			existing := findOpeningHour(kitchen.OpeningHours, day)
			in, ok := submitted[day]

			switch {
			case !ok && existing != nil:
				if err := tx.Delete(&model.OpeningHour{}, existing.ID).Error; err != nil {
					return err
				}
			case ok && existing != nil:
				if err := copier.Copy(existing, &in); err != nil {
					return err
				}
				if err := tx.Save(existing).Error; err != nil {
					return err
				}
			case ok:
				hour := model.OpeningHour{KitchenId: kitchen.ID}
				if err := copier.Copy(&hour, &in); err != nil {
					return err
				}
				if err := tx.Create(&hour).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetKitchenById(db, kitchenId)
}
