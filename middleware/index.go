package middleware

import (
	"errors"
	"fmt"
	"strings"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var staffRoles = map[string]bool{
	constants.ROLE_ADMIN:   true,
	constants.ROLE_STAFF:   true,
	constants.ROLE_KITCHEN: true,
}

// Protected accepts a staff token from the access_token cookie or a Bearer
// header and stores the parsed token in Locals("user").
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.Config("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("user", jwtToken)
		claim, ok := helper.GetTokenClaim(c)
		if !ok || !staffRoles[claim.Role] {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, nil)
		}
		return c.Next()
	}
}
