package helper

import (
	"fmt"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

func GetSpaceById(db *gorm.DB, spaceId uint) (*model.Space, error) {
	var space model.Space
	if err := db.First(&space, spaceId).Error; err != nil {
		return nil, notFoundOr(err, constants.SPACE_NOT_FOUND)
	}
	return &space, nil
}

// SpaceOrderURL is the customer ordering page of a space under baseURL.
func SpaceOrderURL(baseURL string, space *model.Space) string {
	return fmt.Sprintf("%s/space/%d", strings.TrimRight(baseURL, "/"), space.ID)
}

// SpaceQRCode renders the ordering page of space as a size x size PNG.
func SpaceQRCode(baseURL string, space *model.Space, size int) ([]byte, error) {
	return qrcode.Encode(SpaceOrderURL(baseURL, space), qrcode.Medium, size)
}
