package model

import "time"

type TokenClaim struct {
	UserId    uint   `json:"userId"`
	Role      string `json:"role"`
	KitchenId *uint  `json:"kitchenId"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `query:"limit"`
	Page  *int `query:"page"`
}

// Tables lists every persisted model in migration order.
func Tables() []any {
	return []any{
		&User{},
		&Kitchen{},
		&OpeningHour{},
		&Site{},
		&Space{},
		&Menu{},
		&MenuItem{},
		&MenuItemOption{},
		&MenuItemOptionChoice{},
		&Order{},
		&OrderItem{},
		&OrderItemChoice{},
		&Call{},
	}
}
