package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateCall() fiber.Handler {
	return body[model.CreateCallInput]("createInput")
}

func FilterCalls() fiber.Handler {
	return query[model.FilterCallInput]("filterInput")
}
