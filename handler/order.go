package handler

import (
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateOrderInput)

	order, err := helper.CreateOrder(database.DB, input, helper.OrderOptions{
		Now:             utils.Now(),
		AllowMixedMenus: allowMixedMenus(),
	})
	if err != nil {
		return utils.HandleError(c, err)
	}

	utils.Log.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"kitchen_id":   order.KitchenId,
		"items":        len(order.Items),
	}).Info("order created")
	helper.PublishKitchenEvent(c.Context(), order.KitchenId, helper.EventOrderCreated, order)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func GetOrder(c *fiber.Ctx) error {
	orderId := c.Locals("orderId").(uint)

	order, err := helper.GetOrderById(database.DB, orderId)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetKitchenOrders(c *fiber.Ctx) error {
	kitchenId := c.Locals("kitchenId").(uint)
	if !guardKitchen(c, kitchenId) {
		return nil
	}
	filter := c.Locals("filterInput").(model.FilterKitchenOrderInput)

	orders, total, err := helper.ListKitchenOrders(database.DB, kitchenId, filter)
	if err != nil {
		return utils.HandleError(c, err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func UpdateOrderItemStatus(c *fiber.Ctx) error {
	orderItemId := c.Locals("orderItemId").(uint)
	input := c.Locals("updateInput").(model.UpdateOrderItemStatusInput)

	kitchenId, err := helper.OrderItemKitchen(database.DB, orderItemId)
	if err != nil {
		return utils.HandleError(c, err)
	}
	if !guardKitchen(c, kitchenId) {
		return nil
	}

	change, err := helper.UpdateOrderItemStatus(database.DB, orderItemId, input.Status)
	if err != nil {
		return utils.HandleError(c, err)
	}

	helper.PublishKitchenEvent(c.Context(), change.KitchenId, helper.EventOrderItemStatusChanged, change)
	return utils.SuccessResponse(c, fiber.StatusOK, change.Item)
}
