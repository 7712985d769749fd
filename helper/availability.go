package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidTimezone = errors.New("timezone must look like +HH:MM or -HH:MM")
	ErrInvalidClock    = errors.New("time must look like HH:MM")
)

var (
	timezonePattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)
	clockPattern    = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// ParseTimezoneOffset turns "+03:00" into a signed duration.
func ParseTimezoneOffset(tz string) (time.Duration, error) {
	parts := timezonePattern.FindStringSubmatch(tz)
	if parts == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	hours, _ := strconv.Atoi(parts[2])
	minutes, _ := strconv.Atoi(parts[3])
	if hours > 14 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTimezone, tz)
	}

	offset := time.Duration(hours*60+minutes) * time.Minute
	if parts[1] == "-" {
		offset = -offset
	}
	return offset, nil
}

func ParseClock(value string) (hour, minute int, err error) {
	parts := clockPattern.FindStringSubmatch(value)
	if parts == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	hour, _ = strconv.Atoi(parts[1])
	minute, _ = strconv.Atoi(parts[2])
	return hour, minute, nil
}

// IsKitchenOpen evaluates a kitchen's availability at now.
//
// In manual mode the IsOpen flag is returned as is. In schedule mode the
// opening hour of now's UTC weekday is used, shifted by its timezone offset,
// with both ends inclusive. A close time earlier than the open time spills into
// the next day, and the previous day's spilled window is honoured too.
func IsKitchenOpen(kitchen model.Kitchen, now time.Time) (bool, error) {
	if !kitchen.IsWeeklyTimingOn {
		return kitchen.IsOpen, nil
	}

	now = now.UTC()
	today := model.Weekdays[now.Weekday()]
	yesterday := model.Weekdays[(now.Weekday()+6)%7]

	if hour := findOpeningHour(kitchen.OpeningHours, today); hour != nil {
		open, err := withinOpeningHour(*hour, now, 0)
		if err != nil || open {
			return open, err
		}
	}
	if hour := findOpeningHour(kitchen.OpeningHours, yesterday); hour != nil {
		return withinOpeningHour(*hour, now, -1)
	}
	return false, nil
}

func findOpeningHour(hours []model.OpeningHour, day model.DayOfWeek) *model.OpeningHour {
	for i := range hours {
		if hours[i].DayOfWeek == day {
			return &hours[i]
		}
	}
	return nil
}

// withinOpeningHour checks the window that opens dayShift days away from the
// local date of now. Only overnight windows are checked for dayShift != 0.
func withinOpeningHour(hour model.OpeningHour, now time.Time, dayShift int) (bool, error) {
	offset, err := ParseTimezoneOffset(hour.Timezone)
	if err != nil {
		return false, err
	}
	openHour, openMinute, err := ParseClock(hour.OpenTime)
	if err != nil {
		return false, err
	}
	closeHour, closeMinute, err := ParseClock(hour.CloseTime)
	if err != nil {
		return false, err
	}

	local := now.Add(offset)
	year, month, day := local.Date()
	openAt := time.Date(year, month, day+dayShift, openHour, openMinute, 0, 0, time.UTC)
	closeAt := time.Date(year, month, day+dayShift, closeHour, closeMinute, 0, 0, time.UTC)
	if closeAt.Before(openAt) {
		closeAt = closeAt.AddDate(0, 0, 1)
	} else if dayShift != 0 {
		return false, nil
	}

	return !local.Before(openAt) && !local.After(closeAt), nil
}

// GetKitchenStatus loads a kitchen with its opening hours and evaluates it.
func GetKitchenStatus(db *gorm.DB, kitchenId uint, now time.Time) (bool, error) {
	var kitchen model.Kitchen
	if err := db.Preload("OpeningHours").First(&kitchen, kitchenId).Error; err != nil {
		return false, notFoundOr(err, constants.KITCHEN_NOT_FOUND)
	}
	open, err := IsKitchenOpen(kitchen, now)
	if err != nil {
		return false, fmt.Errorf("evaluate kitchen %d: %w", kitchen.ID, err)
	}
	return open, nil
}

// notFoundOr maps gorm's record-not-found onto a NotFound app error and
// returns every other error untouched.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(message, err)
	}
	return err
}
