package model

type Site struct {
	DTO
	Name   string  `gorm:"not null" json:"name"`
	Spaces []Space `gorm:"foreignKey:SiteId" json:"spaces,omitempty"`
}

// Space is a table or room orders and calls are placed from.
type Space struct {
	DTO
	Name      string   `gorm:"not null" json:"name"`
	SiteId    uint     `gorm:"not null" json:"siteId"`
	KitchenId *uint    `json:"kitchenId"`
	Site      *Site    `gorm:"foreignKey:SiteId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"site,omitempty"`
	Kitchen   *Kitchen `gorm:"foreignKey:KitchenId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"kitchen,omitempty"`
}
