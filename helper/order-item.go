package helper

import (
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
)

var orderItemTransitions = map[model.OrderItemStatus][]model.OrderItemStatus{
	model.OrderItemPending:    {model.OrderItemInProgress, model.OrderItemCancelled},
	model.OrderItemInProgress: {model.OrderItemReady, model.OrderItemCancelled},
	model.OrderItemReady:      {model.OrderItemDelivered, model.OrderItemCancelled},
}

// CanTransition reports whether an order item may move from one status to
// another. DELIVERED and CANCELLED are final.
func CanTransition(from, to model.OrderItemStatus) bool {
	for _, next := range orderItemTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItemStatusChange is the outcome of a status update, with the kitchen
// the item's order belongs to.
type OrderItemStatusChange struct {
	Item      model.OrderItem       `json:"item"`
	From      model.OrderItemStatus `json:"from"`
	KitchenId uint                  `json:"kitchenId"`
}

func UpdateOrderItemStatus(db *gorm.DB, orderItemId uint, status model.OrderItemStatus) (*OrderItemStatusChange, error) {
	var change OrderItemStatusChange
	err := db.Transaction(func(tx *gorm.DB) error {
		var item model.OrderItem
		if err := tx.Preload("Choices").First(&item, orderItemId).Error; err != nil {
			return notFoundOr(err, constants.ORDER_ITEM_NOT_FOUND)
		}
		if !CanTransition(item.Status, status) {
			return utils.Conflict(constants.INVALID_STATUS_CHANGE, fmt.Errorf("%s to %s", item.Status, status))
		}

		var order model.Order
		if err := tx.Select("id", "kitchen_id").First(&order, item.OrderId).Error; err != nil {
			return notFoundOr(err, constants.ORDER_NOT_FOUND)
		}

		// guard on the old status so a concurrent update cannot be overwritten
		result := tx.Model(&model.OrderItem{}).
			Where("id = ? AND status = ?", item.ID, item.Status).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.Conflict(constants.INVALID_STATUS_CHANGE, fmt.Errorf("order item %d changed concurrently", item.ID))
		}

		change.From = item.Status
		item.Status = status
		change.Item = item
		change.KitchenId = order.KitchenId
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &change, nil
}

// ExpireStaleOrderItems cancels items still waiting or cooking once they are
// older than maxAge.
func ExpireStaleOrderItems(db *gorm.DB, now time.Time, maxAge time.Duration) (int64, error) {
	result := db.Model(&model.OrderItem{}).
		Where("status IN ? AND created_at < ?",
			[]model.OrderItemStatus{model.OrderItemPending, model.OrderItemInProgress},
			now.Add(-maxAge)).
		Update("status", model.OrderItemCancelled)
	return result.RowsAffected, result.Error
}

// OrderItemKitchen returns the kitchen that owns an order item's order.
func OrderItemKitchen(db *gorm.DB, orderItemId uint) (uint, error) {
	var kitchenIds []uint
	err := db.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.id = ?", orderItemId).
		Pluck("orders.kitchen_id", &kitchenIds).Error
	if err != nil {
		return 0, err
	}
	if len(kitchenIds) == 0 {
		return 0, utils.NotFound(constants.ORDER_ITEM_NOT_FOUND, fmt.Errorf("order item %d", orderItemId))
	}
	return kitchenIds[0], nil
}

// ListKitchenOrders returns one page of a kitchen's orders, newest first, and
// the number of orders matching the filter.
func ListKitchenOrders(db *gorm.DB, kitchenId uint, filter model.FilterKitchenOrderInput) ([]model.Order, int64, error) {
	query := db.Model(&model.Order{}).Where("kitchen_id = ?", kitchenId)
	if filter.Date != "" {
		query = query.Where("business_date = ?", filter.Date)
	}
	if filter.Status != "" {
		query = query.Where("EXISTS (SELECT 1 FROM order_items WHERE order_items.order_id = orders.id AND order_items.status = ?)", filter.Status)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Choices").
		Order("id DESC").
		Find(&orders).Error
	return orders, total, err
}
