package model

type Menu struct {
	DTO
	Name      string     `gorm:"not null" json:"name"`
	Slug      string     `gorm:"uniqueIndex" json:"slug"`
	KitchenId *uint      `json:"kitchenId"`
	Items     []MenuItem `gorm:"foreignKey:MenuId" json:"items,omitempty"`
}

type MenuItem struct {
	DTO
	MenuId      uint             `gorm:"not null;index" json:"menuId"`
	Name        string           `gorm:"not null" json:"name"`
	NameAr      string           `json:"nameAr"`
	Price       float64          `gorm:"not null;default:0" json:"price"`
	IsAvailable bool             `gorm:"not null;default:true" json:"isAvailable"`
	Images      []string         `gorm:"type:json;serializer:json" json:"images"`
	Options     []MenuItemOption `gorm:"many2many:menu_item_option_connections;" json:"options,omitempty"`
}

// MenuItemOption is a customization axis that may be shared by several items.
// DefaultChoiceId is a non-owning reference into Choices.
type MenuItemOption struct {
	DTO
	Name            string                 `gorm:"not null" json:"name"`
	NameAr          string                 `json:"nameAr"`
	DefaultChoiceId *uint                  `json:"defaultChoiceId"`
	Choices         []MenuItemOptionChoice `gorm:"foreignKey:MenuItemOptionId;constraint:OnDelete:CASCADE" json:"choices"`
	MenuItems       []MenuItem             `gorm:"many2many:menu_item_option_connections;" json:"-"`
}

type MenuItemOptionChoice struct {
	DTO
	MenuItemOptionId uint   `gorm:"not null;index" json:"menuItemOptionId"`
	Name             string `gorm:"not null" json:"name"`
	NameAr           string `json:"nameAr"`
}

type ChoiceInput struct {
	Id     *uint  `json:"id"`
	Name   string `json:"name" validate:"required,max=100"`
	NameAr string `json:"name_ar" validate:"omitempty,max=100"`
}

type DefaultChoiceInput struct {
	Id     *uint  `json:"id"`
	Name   string `json:"name" validate:"required_without=Id,max=100"`
	NameAr string `json:"name_ar" validate:"omitempty,max=100"`
}

type UpdateMenuItemOptionInput struct {
	Name          string              `json:"name" validate:"required,max=100"`
	NameAr        string              `json:"name_ar" validate:"omitempty,max=100"`
	Choices       []ChoiceInput       `json:"choices" validate:"dive"`
	DefaultChoice *DefaultChoiceInput `json:"default_choice"`
}

type CreateMenuItemOptionInput struct {
	// MenuItemOptionId links an existing shared option instead of creating one.
	MenuItemOptionId *uint               `json:"menu_item_option_id"`
	Name             string              `json:"name" validate:"required_without=MenuItemOptionId,max=100"`
	NameAr           string              `json:"name_ar" validate:"omitempty,max=100"`
	Choices          []ChoiceInput       `json:"choices" validate:"dive"`
	DefaultChoice    *DefaultChoiceInput `json:"default_choice"`
}
