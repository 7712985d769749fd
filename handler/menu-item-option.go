package handler

import (
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CreateMenuItemOption creates an option on the item, or links an existing
// one when menu_item_option_id is given.
func CreateMenuItemOption(c *fiber.Ctx) error {
	menuItemId := c.Locals("menuItemId").(uint)
	input := c.Locals("createInput").(model.CreateMenuItemOptionInput)

	option, err := helper.CreateOption(database.DB, menuItemId, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, option)
}

func UpdateMenuItemOption(c *fiber.Ctx) error {
	optionId := c.Locals("optionId").(uint)
	input := c.Locals("updateInput").(model.UpdateMenuItemOptionInput)

	option, err := helper.ReconcileOption(database.DB, optionId, input)
	if err != nil {
		return utils.HandleError(c, err)
	}

	utils.Log.WithFields(logrus.Fields{
		"option_id": option.ID,
		"choices":   len(option.Choices),
	}).Info("menu item option reconciled")
	return utils.SuccessResponse(c, fiber.StatusOK, option)
}

func UnlinkMenuItemOption(c *fiber.Ctx) error {
	menuItemId := c.Locals("menuItemId").(uint)
	optionId := c.Locals("optionId").(uint)

	if err := helper.UnlinkOption(database.DB, menuItemId, optionId); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}

func DeleteMenuItemOption(c *fiber.Ctx) error {
	optionId := c.Locals("optionId").(uint)

	if err := helper.DeleteOption(database.DB, optionId); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}
