package handler

import (
	"fmt"
	"strconv"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// GetSpaceQRCode returns a PNG QR code pointing customers at the ordering page
// of a space. ?size= sets the edge in pixels.
func GetSpaceQRCode(c *fiber.Ctx) error {
	space, err := helper.GetSpaceById(database.DB, c.Locals("spaceId").(uint))
	if err != nil {
		return utils.HandleError(c, err)
	}

	size := defaultQRSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxQRSize {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fmt.Errorf("size must be between 1 and %d", maxQRSize))
		}
		size = parsed
	}

	png, err := helper.SpaceQRCode(publicOrderURL(), space, size)
	if err != nil {
		return utils.HandleError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}

func publicOrderURL() string {
	return config.ConfigOr("PUBLIC_ORDER_URL", "http://localhost:5173")
}
