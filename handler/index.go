package handler

import (
	"strconv"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// guardKitchen writes a 403 and returns false when the caller may not act on
// kitchenId.
func guardKitchen(c *fiber.Ctx, kitchenId uint) bool {
	claim, ok := helper.GetTokenClaim(c)
	if !ok || !helper.CanManageKitchen(claim, kitchenId) {
		utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN_KITCHEN, nil)
		return false
	}
	return true
}

func allowMixedMenus() bool {
	allowed, err := strconv.ParseBool(config.ConfigOr("ALLOW_MIXED_MENU_ORDERS", "false"))
	return err == nil && allowed
}

func Health(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"time": utils.Now()})
}
