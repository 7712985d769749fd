package helper

import (
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func TestCanManageKitchen(t *testing.T) {
	tests := []struct {
		name  string
		claim model.TokenClaim
		want  bool
	}{
		{"admin", model.TokenClaim{UserId: 1, Role: constants.ROLE_ADMIN}, true},
		{"own kitchen", model.TokenClaim{UserId: 1, Role: constants.ROLE_STAFF, KitchenId: utils.Ptr(uint(4))}, true},
		{"other kitchen", model.TokenClaim{UserId: 1, Role: constants.ROLE_KITCHEN, KitchenId: utils.Ptr(uint(5))}, false},
		{"no kitchen", model.TokenClaim{UserId: 1, Role: constants.ROLE_STAFF}, false},
	}

	for _, tt := range tests {
		if got := CanManageKitchen(tt.claim, 4); got != tt.want {
			t.Errorf("%s: CanManageKitchen = %v, want %v", tt.name, got, tt.want)
		}
	}
}
