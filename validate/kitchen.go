package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateOpeningHours() fiber.Handler {
	return body[model.UpdateOpeningHoursInput]("updateInput")
}
