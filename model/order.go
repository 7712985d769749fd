package model

import "gorm.io/datatypes"

type OrderItemStatus string

const (
	OrderItemPending    OrderItemStatus = "PENDING"
	OrderItemInProgress OrderItemStatus = "IN_PROGRESS"
	OrderItemReady      OrderItemStatus = "READY"
	OrderItemDelivered  OrderItemStatus = "DELIVERED"
	OrderItemCancelled  OrderItemStatus = "CANCELLED"
)

// Order numbers are unique per kitchen and UTC business day.
type Order struct {
	DTO
	OrderNumber  string         `gorm:"size:3;not null;uniqueIndex:idx_order_number_per_day" json:"orderNumber"`
	KitchenId    uint           `gorm:"not null;uniqueIndex:idx_order_number_per_day" json:"kitchenId"`
	BusinessDate string         `gorm:"size:10;not null;uniqueIndex:idx_order_number_per_day" json:"businessDate"`
	SpaceId      uint           `gorm:"not null;index" json:"spaceId"`
	MenuId       uint           `gorm:"not null" json:"menuId"`
	UserId       *uint          `json:"userId,omitempty"`
	CustomerName *string        `json:"customerName,omitempty"`
	TableNumber  *string        `json:"tableNumber,omitempty"`
	Answer       datatypes.JSON `json:"answer,omitempty"`
	Space        *Space         `gorm:"foreignKey:SpaceId" json:"space,omitempty"`
	Menu         *Menu          `gorm:"foreignKey:MenuId" json:"-"`
	User         *User          `gorm:"foreignKey:UserId;constraint:OnDelete:SET NULL" json:"-"`
	Items        []OrderItem    `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	DTO
	OrderId    uint              `gorm:"not null;index" json:"orderId"`
	MenuItemId uint              `gorm:"not null" json:"menuItemId"`
	Quantity   int               `gorm:"not null;default:1" json:"quantity"`
	Note       string            `json:"note"`
	Status     OrderItemStatus   `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	MenuItem   *MenuItem         `gorm:"foreignKey:MenuItemId" json:"menuItem,omitempty"`
	Choices    []OrderItemChoice `gorm:"foreignKey:OrderItemId;constraint:OnDelete:CASCADE" json:"choices"`
}

// OrderItemChoice keeps the picked choice's name so history survives the
// choice being removed from its option.
type OrderItemChoice struct {
	DTO
	OrderItemId            uint                  `gorm:"not null;index" json:"orderItemId"`
	MenuItemOptionChoiceId *uint                 `json:"menuItemOptionChoiceId"`
	Name                   string                `json:"name"`
	MenuItemOptionChoice   *MenuItemOptionChoice `gorm:"foreignKey:MenuItemOptionChoiceId;constraint:OnDelete:SET NULL" json:"-"`
}

type OrderItemChoiceInput struct {
	MenuItemOptionChoiceId uint `json:"menu_item_option_choice_id" validate:"required"`
}

type OrderLineInput struct {
	MenuItemId uint                   `json:"menu_item_id" validate:"required"`
	Quantity   *int                   `json:"quantity" validate:"omitempty,min=1,max=99"`
	Note       string                 `json:"note" validate:"max=500"`
	Choices    []OrderItemChoiceInput `json:"choices" validate:"max=50,dive"`
}

type CreateOrderInput struct {
	SpaceId      uint             `json:"space_id" validate:"required"`
	UserId       *uint            `json:"user_id"`
	CustomerName *string          `json:"customer_name" validate:"omitempty,max=100"`
	TableNumber  *string          `json:"table_number" validate:"omitempty,max=20"`
	Answer       datatypes.JSON   `json:"answer"`
	OrderItems   []OrderLineInput `json:"order_items" validate:"required,min=1,max=100,dive"`
}

type UpdateOrderItemStatusInput struct {
	Status OrderItemStatus `json:"status" validate:"required,oneof=PENDING IN_PROGRESS READY DELIVERED CANCELLED"`
}

type FilterKitchenOrderInput struct {
	Pagination
	Status string `query:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS READY DELIVERED CANCELLED"`
	Date   string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}
