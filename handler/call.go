package handler

import (
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCall(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateCallInput)

	call, err := helper.CreateCall(database.DB, input)
	if err != nil {
		return utils.HandleError(c, err)
	}

	helper.PublishKitchenEvent(c.Context(), call.KitchenId, helper.EventCallCreated, call)
	return utils.SuccessResponse(c, fiber.StatusCreated, call)
}

func ResolveCall(c *fiber.Ctx) error {
	callId := c.Locals("callId").(uint)

	kitchenId, err := helper.CallKitchen(database.DB, callId)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if !guardKitchen(c, kitchenId) {
		return nil
	}
	claim, _ := helper.GetTokenClaim(c)

	resolved, err := helper.ResolveCall(database.DB, callId, claim.UserId, utils.Now())
	if err != nil {
		return utils.HandleError(c, err)
	}

	helper.PublishKitchenEvent(c.Context(), resolved.KitchenId, helper.EventCallResolved, resolved)
	return utils.SuccessResponse(c, fiber.StatusOK, resolved)
}

func GetKitchenCalls(c *fiber.Ctx) error {
	kitchenId := c.Locals("kitchenId").(uint)
	if !guardKitchen(c, kitchenId) {
		return nil
	}
	filter := c.Locals("filterInput").(model.FilterCallInput)

	calls, total, err := helper.ListKitchenCalls(database.DB, kitchenId, filter)
	if err != nil {
		return utils.HandleError(c, err)
	}

	response := &model.ResponseCustom{
		Rows:       calls,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
