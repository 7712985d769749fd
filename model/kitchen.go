package model

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Weekdays is indexed by time.Weekday.
var Weekdays = [7]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

type Kitchen struct {
	DTO
	Name             string        `gorm:"not null" json:"name"`
	IsOpen           bool          `gorm:"not null;default:false" json:"isOpen"`
	IsWeeklyTimingOn bool          `gorm:"not null;default:false" json:"isWeeklyTimingOn"`
	OpeningHours     []OpeningHour `gorm:"foreignKey:KitchenId;constraint:OnDelete:CASCADE" json:"openingHours"`
	Spaces           []Space       `gorm:"foreignKey:KitchenId" json:"spaces,omitempty"`
}

type OpeningHour struct {
	DTO
	KitchenId uint      `gorm:"not null;uniqueIndex:idx_opening_hour_kitchen_day" json:"kitchenId"`
	DayOfWeek DayOfWeek `gorm:"size:9;not null;uniqueIndex:idx_opening_hour_kitchen_day" json:"dayOfWeek"`
	OpenTime  string    `gorm:"size:5;not null" json:"openTime"`
	CloseTime string    `gorm:"size:5;not null" json:"closeTime"`
	Timezone  string    `gorm:"size:6;not null;default:'+00:00'" json:"timezone"`
}

type OpeningHourInput struct {
	DayOfWeek DayOfWeek `json:"day_of_week" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	OpenTime  string    `json:"open_time" validate:"required,hhmm"`
	CloseTime string    `json:"close_time" validate:"required,hhmm"`
	Timezone  string    `json:"timezone" validate:"required,tzoffset"`
}

type UpdateOpeningHoursInput struct {
	IsOpen           *bool              `json:"is_open"`
	IsWeeklyTimingOn *bool              `json:"is_weekly_timing_on"`
	OpeningHours     []OpeningHourInput `json:"opening_hours" validate:"max=7,dive"`
}

type KitchenStatus struct {
	IsOpen bool `json:"isOpen"`
}
