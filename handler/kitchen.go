package handler

import (
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetKitchenStatus(c *fiber.Ctx) error {
	kitchenId := c.Locals("kitchenId").(uint)

	open, err := helper.GetKitchenStatus(database.DB, kitchenId, utils.Now())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.KitchenStatus{IsOpen: open})
}

func GetKitchen(c *fiber.Ctx) error {
	kitchenId := c.Locals("kitchenId").(uint)
	if !guardKitchen(c, kitchenId) {
		return nil
	}

	kitchen, err := helper.GetKitchenById(database.DB, kitchenId)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, kitchen)
}

func UpdateOpeningHours(c *fiber.Ctx) error {
	kitchenId := c.Locals("kitchenId").(uint)
	if !guardKitchen(c, kitchenId) {
		return nil
	}
	input := c.Locals("updateInput").(model.UpdateOpeningHoursInput)

	kitchen, err := helper.SyncOpeningHours(database.DB, kitchenId, input)
	if err != nil {
		return utils.HandleError(c, err)
	}

	open, err := helper.IsKitchenOpen(*kitchen, utils.Now())
	if err != nil {
		return utils.HandleError(c, err)
	}
	helper.PublishKitchenEvent(c.Context(), kitchen.ID, helper.EventKitchenStatusChanged, model.KitchenStatus{IsOpen: open})

	return utils.SuccessResponse(c, fiber.StatusOK, kitchen)
}
