package helper

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	orderNumberSpace    = 4096
	orderNumberProbes   = 16
	orderCommitAttempts = 3
	businessDateLayout  = "2006-01-02"
)

// orderNumberIntn picks a candidate in [0, n).
var orderNumberIntn = rand.IntN

type OrderOptions struct {
	Now time.Time
	// AllowMixedMenus keeps the lenient behavior where items from several menus
	// are accepted and the order is bound to the first item's menu.
	AllowMixedMenus bool
}

// CreateOrder admits an order for a space. All checks run before any write and
// the order, its items and their choices are committed in one transaction.
func CreateOrder(db *gorm.DB, input model.CreateOrderInput, opts OrderOptions) (*model.Order, error) {
	if input.UserId != nil {
		var user model.User
		if err := db.First(&user, *input.UserId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.BadRequest(constants.USER_NOT_FOUND, fmt.Errorf("user %d does not exist", *input.UserId))
			}
			return nil, err
		}
	}

	kitchen, err := KitchenForSpace(db, input.SpaceId)
	if err != nil {
		return nil, err
	}
	open, err := IsKitchenOpen(*kitchen, opts.Now)
	if err != nil {
		return nil, fmt.Errorf("evaluate kitchen %d: %w", kitchen.ID, err)
	}
	if !open {
		return nil, utils.Conflict(constants.KITCHEN_CLOSED, fmt.Errorf("kitchen %d is closed", kitchen.ID))
	}

	menuId, err := ValidateOrderItems(db, input.OrderItems, opts.AllowMixedMenus)
	if err != nil {
		return nil, err
	}

	businessDate := opts.Now.UTC().Format(businessDateLayout)
	var orderId uint
	for attempt := 1; ; attempt++ {
		orderId, err = commitOrder(db, input, kitchen.ID, menuId, businessDate)
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < orderCommitAttempts {
			utils.Log.WithField("kitchen_id", kitchen.ID).WithField("attempt", attempt).Warn("order number taken concurrently, retrying")
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	return GetOrderById(db, orderId)
}

// KitchenForSpace resolves the kitchen serving a space, with its opening hours.
func KitchenForSpace(db *gorm.DB, spaceId uint) (*model.Kitchen, error) {
	var space model.Space
	if err := db.First(&space, spaceId).Error; err != nil {
		return nil, notFoundOr(err, constants.SPACE_NOT_FOUND)
	}
	if space.KitchenId == nil {
		return nil, utils.NotFound(constants.SPACE_HAS_NO_KITCHEN, fmt.Errorf("space %d has no kitchen", space.ID))
	}

	var kitchen model.Kitchen
	if err := db.Preload("OpeningHours").First(&kitchen, *space.KitchenId).Error; err != nil {
		return nil, notFoundOr(err, constants.KITCHEN_NOT_FOUND)
	}
	return &kitchen, nil
}

// ValidateOrderItems checks that every referenced menu item exists and returns
// the menu the order belongs to.
func ValidateOrderItems(db *gorm.DB, lines []model.OrderLineInput, allowMixedMenus bool) (uint, error) {
	if len(lines) == 0 {
		return 0, utils.BadRequest(constants.ORDER_ITEMS_EMPTY, nil)
	}

	ids := make([]uint, 0, len(lines))
	requested := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if !requested[line.MenuItemId] {
			requested[line.MenuItemId] = true
			ids = append(ids, line.MenuItemId)
		}
	}

	var items []model.MenuItem
	if err := db.Where("id IN ?", ids).Order("id").Find(&items).Error; err != nil {
		return 0, err
	}

	found := make(map[uint]bool, len(items))
	for _, item := range items {
		found[item.ID] = true
	}
	var missing []uint
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return 0, utils.BadRequest(constants.MENU_ITEMS_MISSING, fmt.Errorf("missing menu item ids: %v", missing))
	}

	menuId := items[0].MenuId
	if !allowMixedMenus {
		for _, item := range items {
			if item.MenuId != menuId {
				return 0, utils.BadRequest(constants.MIXED_MENU_ORDER, fmt.Errorf("menu item %d belongs to menu %d, expected %d", item.ID, item.MenuId, menuId))
			}
		}
	}
	return menuId, nil
}

func commitOrder(db *gorm.DB, input model.CreateOrderInput, kitchenId, menuId uint, businessDate string) (uint, error) {
	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		number, err := nextOrderNumber(tx, kitchenId, businessDate)
		if err != nil {
			return err
		}

		order = model.Order{
			OrderNumber:  number,
			KitchenId:    kitchenId,
			BusinessDate: businessDate,
			SpaceId:      input.SpaceId,
			MenuId:       menuId,
			UserId:       input.UserId,
			CustomerName: input.CustomerName,
			TableNumber:  input.TableNumber,
			Answer:       input.Answer,
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		for _, line := range input.OrderItems {
			quantity := 1
			if line.Quantity != nil {
				quantity = *line.Quantity
			}
			item := model.OrderItem{
				OrderId:    order.ID,
				MenuItemId: line.MenuItemId,
				Quantity:   quantity,
				Note:       line.Note,
				Status:     model.OrderItemPending,
			}
			if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
				return err
			}

			for _, ref := range line.Choices {
				var choice model.MenuItemOptionChoice
				if err := tx.First(&choice, ref.MenuItemOptionChoiceId).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return utils.BadRequest(constants.CHOICE_NOT_FOUND, fmt.Errorf("choice %d does not exist", ref.MenuItemOptionChoiceId))
					}
					return err
				}
				offered, err := isOptionLinked(tx, &model.MenuItem{DTO: model.DTO{ID: line.MenuItemId}}, choice.MenuItemOptionId)
				if err != nil {
					return err
				}
				if !offered {
					utils.Log.WithFields(logrus.Fields{
						"menu_item_id": line.MenuItemId,
						"choice_id":    choice.ID,
						"option_id":    choice.MenuItemOptionId,
					}).Warn("choice is not offered by the ordered menu item")
				}
				itemChoice := model.OrderItemChoice{
					OrderItemId:            item.ID,
					MenuItemOptionChoiceId: &choice.ID,
					Name:                   choice.Name,
				}
				if err := tx.Omit(clause.Associations).Create(&itemChoice).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// nextOrderNumber picks a three hex digit number not yet used by the kitchen
// on businessDate.
func nextOrderNumber(tx *gorm.DB, kitchenId uint, businessDate string) (string, error) {
	var used []string
	if err := tx.Model(&model.Order{}).
		Where("kitchen_id = ? AND business_date = ?", kitchenId, businessDate).
		Pluck("order_number", &used).Error; err != nil {
		return "", err
	}
	if len(used) >= orderNumberSpace {
		return "", utils.Conflict(constants.ORDER_NUMBERS_USED_UP, fmt.Errorf("kitchen %d used every number on %s", kitchenId, businessDate))
	}

	taken := make(map[string]bool, len(used))
	for _, number := range used {
		taken[number] = true
	}
	for i := 0; i < orderNumberProbes; i++ {
		number := FormatOrderNumber(orderNumberIntn(orderNumberSpace))
		if !taken[number] {
			return number, nil
		}
	}

	start := orderNumberIntn(orderNumberSpace)
	for i := 0; i < orderNumberSpace; i++ {
		number := FormatOrderNumber((start + i) % orderNumberSpace)
		if !taken[number] {
			return number, nil
		}
	}
	return "", utils.Conflict(constants.ORDER_NUMBERS_USED_UP, fmt.Errorf("kitchen %d used every number on %s", kitchenId, businessDate))
}

func FormatOrderNumber(n int) string {
	return fmt.Sprintf("%03X", n)
}

func GetOrderById(db *gorm.DB, orderId uint) (*model.Order, error) {
	var order model.Order
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Choices", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&order, orderId).Error
	if err != nil {
		return nil, notFoundOr(err, constants.ORDER_NOT_FOUND)
	}
	return &order, nil
}
