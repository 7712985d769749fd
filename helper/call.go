package helper

import (
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
)

// CreateCall raises a service call from a space to the kitchen serving it.
func CreateCall(db *gorm.DB, input model.CreateCallInput) (*model.Call, error) {
	kitchen, err := KitchenForSpace(db, input.SpaceId)
	if err != nil {
		return nil, err
	}

	call := model.Call{
		SpaceId:   input.SpaceId,
		KitchenId: kitchen.ID,
		Note:      input.Note,
		Status:    model.CallOpen,
	}
	if err := db.Create(&call).Error; err != nil {
		return nil, err
	}
	return &call, nil
}

func ResolveCall(db *gorm.DB, callId, staffId uint, now time.Time) (*model.Call, error) {
	var call model.Call
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&call, callId).Error; err != nil {
			return notFoundOr(err, constants.CALL_NOT_FOUND)
		}
		if call.Status == model.CallResolved {
			return utils.Conflict(constants.CALL_ALREADY_RESOLVED, fmt.Errorf("call %d", call.ID))
		}

		call.Status = model.CallResolved
		call.ResolvedAt = &now
		if staffId != 0 {
			call.ResolvedBy = &staffId
		}
		return tx.Save(&call).Error
	})
	if err != nil {
		return nil, err
	}
	return &call, nil
}

func CallKitchen(db *gorm.DB, callId uint) (uint, error) {
	var call model.Call
	if err := db.Select("id", "kitchen_id").First(&call, callId).Error; err != nil {
		return 0, notFoundOr(err, constants.CALL_NOT_FOUND)
	}
	return call.KitchenId, nil
}

func ListKitchenCalls(db *gorm.DB, kitchenId uint, filter model.FilterCallInput) ([]model.Call, int64, error) {
	query := db.Model(&model.Call{}).Where("kitchen_id = ?", kitchenId)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var calls []model.Call
	err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Preload("Space").
		Order("id DESC").
		Find(&calls).Error
	return calls, total, err
}
