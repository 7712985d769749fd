package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return body[model.CreateOrderInput]("createInput")
}

func UpdateOrderItemStatus() fiber.Handler {
	return body[model.UpdateOrderItemStatusInput]("updateInput")
}

func FilterKitchenOrders() fiber.Handler {
	return query[model.FilterKitchenOrderInput]("filterInput")
}
