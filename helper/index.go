package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetTokenClaim reads the staff claims the Protected middleware stored on the
// request. ok is false for anonymous requests.
func GetTokenClaim(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}

	var tokenClaim model.TokenClaim
	if userId, ok := claims["userId"].(float64); ok {
		tokenClaim.UserId = uint(userId)
	}
	if role, ok := claims["role"].(string); ok {
		tokenClaim.Role = role
	}
	if kitchenId, ok := claims["kitchenId"].(float64); ok {
		id := uint(kitchenId)
		tokenClaim.KitchenId = &id
	}
	return tokenClaim, tokenClaim.UserId != 0
}

// CanManageKitchen reports whether the claim may act on kitchenId. Admins act
// on every kitchen, other staff only on their own.
func CanManageKitchen(claim model.TokenClaim, kitchenId uint) bool {
	if claim.Role == constants.ROLE_ADMIN {
		return true
	}
	return claim.KitchenId != nil && *claim.KitchenId == kitchenId
}
