package helper

import (
	"net/http"
	"testing"

	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func TestCallLifecycle(t *testing.T) {
	db := newTestDB(t)
	f := newOrderFixture(t, db, openKitchen())

	call, err := CreateCall(db, model.CreateCallInput{SpaceId: f.space.ID, Note: "water please"})
	if err != nil {
		t.Fatalf("CreateCall: %v", err)
	}
	if call.KitchenId != f.kitchen.ID || call.Status != model.CallOpen {
		t.Fatalf("unexpected call %+v", call)
	}

	kitchenId, err := CallKitchen(db, call.ID)
	if err != nil || kitchenId != f.kitchen.ID {
		t.Fatalf("CallKitchen = %d, %v", kitchenId, err)
	}

	calls, total, err := ListKitchenCalls(db, f.kitchen.ID, model.FilterCallInput{Status: string(model.CallOpen)})
	if err != nil || total != 1 || len(calls) != 1 || calls[0].Space == nil {
		t.Fatalf("open calls = %+v total %d err %v", calls, total, err)
	}

	resolvedAt := at(1, 12, 5)
	resolved, err := ResolveCall(db, call.ID, 7, resolvedAt)
	if err != nil {
		t.Fatalf("ResolveCall: %v", err)
	}
	if resolved.Status != model.CallResolved || resolved.ResolvedBy == nil || *resolved.ResolvedBy != 7 || !resolved.ResolvedAt.Equal(resolvedAt) {
		t.Fatalf("unexpected resolved call %+v", resolved)
	}

	if _, err := ResolveCall(db, call.ID, 7, resolvedAt); utils.StatusOf(err) != http.StatusConflict {
		t.Fatalf("resolving twice should conflict, got %v", err)
	}

	_, total, err = ListKitchenCalls(db, f.kitchen.ID, model.FilterCallInput{Status: string(model.CallOpen)})
	if err != nil || total != 0 {
		t.Fatalf("open calls after resolve: %d, %v", total, err)
	}
}

func TestCall_NotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := CreateCall(db, model.CreateCallInput{SpaceId: 5}); utils.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("unknown space should be 404, got %v", err)
	}
	if _, err := ResolveCall(db, 5, 1, at(1, 0, 0)); utils.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("unknown call should be 404, got %v", err)
	}
	if _, err := CallKitchen(db, 5); utils.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("unknown call should be 404, got %v", err)
	}
}
