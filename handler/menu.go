package handler

import (
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMenuBySlug(c *fiber.Ctx) error {
	menu, err := helper.GetMenuBySlug(database.DB, c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, menu)
}
