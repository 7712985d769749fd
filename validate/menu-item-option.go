package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMenuItemOption() fiber.Handler {
	return body[model.CreateMenuItemOptionInput]("createInput")
}

func UpdateMenuItemOption() fiber.Handler {
	return body[model.UpdateMenuItemOptionInput]("updateInput")
}
