package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handler.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1", logger.New())

	order := v1.Group("/order")
	order.Post("/", validate.CreateOrder(), handler.CreateOrder)
	order.Get("/:orderId", validate.GetById("orderId"), handler.GetOrder)

	orderItem := v1.Group("/order-item")
	orderItem.Patch("/:orderItemId/status", middleware.Protected(), validate.GetById("orderItemId"), validate.UpdateOrderItemStatus(), handler.UpdateOrderItemStatus)

	kitchen := v1.Group("/kitchen")
	kitchen.Get("/:kitchenId/status", validate.GetById("kitchenId"), handler.GetKitchenStatus)
	kitchen.Get("/:kitchenId", middleware.Protected(), validate.GetById("kitchenId"), handler.GetKitchen)
	kitchen.Put("/:kitchenId/opening-hours", middleware.Protected(), validate.GetById("kitchenId"), validate.UpdateOpeningHours(), handler.UpdateOpeningHours)
	kitchen.Get("/:kitchenId/orders", middleware.Protected(), validate.GetById("kitchenId"), validate.FilterKitchenOrders(), handler.GetKitchenOrders)
	kitchen.Get("/:kitchenId/calls", middleware.Protected(), validate.GetById("kitchenId"), validate.FilterCalls(), handler.GetKitchenCalls)
	kitchen.Get("/:kitchenId/ws", middleware.Protected(), validate.GetById("kitchenId"), handler.KitchenWebsocketUpgrade, websocket.New(handler.KitchenWebsocket))

	call := v1.Group("/call")
	call.Post("/", validate.CreateCall(), handler.CreateCall)
	call.Patch("/:callId/resolve", middleware.Protected(), validate.GetById("callId"), handler.ResolveCall)

	menu := v1.Group("/menu")
	menu.Get("/:slug", handler.GetMenuBySlug)

	space := v1.Group("/space")
	space.Get("/:spaceId/qr", validate.GetById("spaceId"), handler.GetSpaceQRCode)

	menuItem := v1.Group("/menu-item", middleware.Protected())
	menuItem.Post("/:menuItemId/option", validate.GetById("menuItemId"), validate.CreateMenuItemOption(), handler.CreateMenuItemOption)
	menuItem.Delete("/:menuItemId/option/:optionId", validate.GetById("menuItemId"), validate.GetById("optionId"), handler.UnlinkMenuItemOption)

	option := v1.Group("/menu-item-option", middleware.Protected())
	option.Patch("/:optionId", validate.GetById("optionId"), validate.UpdateMenuItemOption(), handler.UpdateMenuItemOption)
	option.Delete("/:optionId", validate.GetById("optionId"), handler.DeleteMenuItemOption)
}
