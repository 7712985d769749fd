package database

import (
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
)

// SeedData creates a demo site, kitchen, space and menu on an empty database.
func SeedData(db *gorm.DB) {
	var count int64
	db.Model(&model.Kitchen{}).Count(&count)
	if count > 0 {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		kitchen := model.Kitchen{
			Name:             "Main Kitchen",
			IsOpen:           true,
			IsWeeklyTimingOn: false,
		}
		if err := tx.Create(&kitchen).Error; err != nil {
			return err
		}
		for _, day := range model.Weekdays {
			hour := model.OpeningHour{
				KitchenId: kitchen.ID,
				DayOfWeek: day,
				OpenTime:  "08:00",
				CloseTime: "23:00",
				Timezone:  "+00:00",
			}
			if err := tx.Create(&hour).Error; err != nil {
				return err
			}
		}

		site := model.Site{Name: "Ground Floor"}
		if err := tx.Create(&site).Error; err != nil {
			return err
		}
		spaces := []model.Space{
			{Name: "Table 1", SiteId: site.ID, KitchenId: &kitchen.ID},
			{Name: "Table 2", SiteId: site.ID, KitchenId: &kitchen.ID},
			{Name: "Lounge", SiteId: site.ID, KitchenId: &kitchen.ID},
		}
		if err := tx.Create(&spaces).Error; err != nil {
			return err
		}

		menu := model.Menu{
			Name:      "All Day Menu",
			Slug:      helper.GenerateUniqueMenuSlug(tx, "All Day Menu"),
			KitchenId: &kitchen.ID,
		}
		if err := tx.Create(&menu).Error; err != nil {
			return err
		}
		items := []model.MenuItem{
			{MenuId: menu.ID, Name: "Flat White", NameAr: "فلات وايت", Price: 3.5, IsAvailable: true},
			{MenuId: menu.ID, Name: "Club Sandwich", NameAr: "كلوب ساندويتش", Price: 8, IsAvailable: true},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		_, err := helper.CreateOption(tx, items[0].ID, model.CreateMenuItemOptionInput{
			Name:   "Size",
			NameAr: "الحجم",
			Choices: []model.ChoiceInput{
				{Name: "Small", NameAr: "صغير"},
				{Name: "Large", NameAr: "كبير"},
			},
		})
		return err
	})
	if err != nil {
		utils.Log.WithError(err).Error("failed to seed data")
		return
	}
	utils.Log.Info("seed data created")
}
