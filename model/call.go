package model

import "time"

type CallStatus string

const (
	CallOpen     CallStatus = "OPEN"
	CallResolved CallStatus = "RESOLVED"
)

// Call is an in-person service request raised from a space.
type Call struct {
	DTO
	SpaceId    uint       `gorm:"not null;index" json:"spaceId"`
	KitchenId  uint       `gorm:"not null;index" json:"kitchenId"`
	Note       string     `json:"note"`
	Status     CallStatus `gorm:"size:10;not null;default:'OPEN'" json:"status"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy *uint      `json:"resolvedBy,omitempty"`
	Space      *Space     `gorm:"foreignKey:SpaceId" json:"space,omitempty"`
}

type CreateCallInput struct {
	SpaceId uint   `json:"space_id" validate:"required"`
	Note    string `json:"note" validate:"max=300"`
}

type FilterCallInput struct {
	Pagination
	Status string `query:"status" validate:"omitempty,oneof=OPEN RESOLVED"`
}
