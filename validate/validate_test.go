package validate

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func TestOpeningHourTags(t *testing.T) {
	tests := []struct {
		name  string
		input model.OpeningHourInput
		ok    bool
	}{
		{"valid", model.OpeningHourInput{DayOfWeek: model.Monday, OpenTime: "09:00", CloseTime: "18:00", Timezone: "+03:00"}, true},
		{"bad clock", model.OpeningHourInput{DayOfWeek: model.Monday, OpenTime: "9am", CloseTime: "18:00", Timezone: "+03:00"}, false},
		{"bad timezone", model.OpeningHourInput{DayOfWeek: model.Monday, OpenTime: "09:00", CloseTime: "18:00", Timezone: "UTC+3"}, false},
		{"bad day", model.OpeningHourInput{DayOfWeek: "FUNDAY", OpenTime: "09:00", CloseTime: "18:00", Timezone: "+03:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("validate.Struct = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestGetById(t *testing.T) {
	app := fiber.New()
	app.Get("/kitchen/:kitchenId", GetById("kitchenId"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals("kitchenId").(uint)})
	})

	tests := []struct {
		path string
		want int
	}{
		{"/kitchen/12", fiber.StatusOK},
		{"/kitchen/abc", fiber.StatusBadRequest},
		{"/kitchen/0", fiber.StatusBadRequest},
		{"/kitchen/-4", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != tt.want {
			t.Fatalf("%s: status = %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestCreateOrderBody(t *testing.T) {
	app := fiber.New()
	app.Post("/order", CreateOrder(), func(c *fiber.Ctx) error {
		input := c.Locals("createInput").(model.CreateOrderInput)
		return c.JSON(fiber.Map{"lines": len(input.OrderItems)})
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"space_id":1,"order_items":[{"menu_item_id":2,"quantity":2,"choices":[{"menu_item_option_choice_id":3}]}],"answer":{"allergies":"nuts"}}`, fiber.StatusOK},
		{"no items", `{"space_id":1,"order_items":[]}`, fiber.StatusBadRequest},
		{"missing space", `{"order_items":[{"menu_item_id":2}]}`, fiber.StatusBadRequest},
		{"zero quantity", `{"space_id":1,"order_items":[{"menu_item_id":2,"quantity":0}]}`, fiber.StatusBadRequest},
		{"broken json", `{"space_id":`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/order", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestUpdateMenuItemOptionBody(t *testing.T) {
	app := fiber.New()
	app.Patch("/option", UpdateMenuItemOption(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"name":"Size","choices":[{"id":1,"name":"Small"},{"name":"Large"}],"default_choice":{"id":1}}`, fiber.StatusNoContent},
		{"default by name", `{"name":"Size","choices":[],"default_choice":{"name":"Large"}}`, fiber.StatusNoContent},
		{"default without id or name", `{"name":"Size","default_choice":{}}`, fiber.StatusBadRequest},
		{"choice without name", `{"name":"Size","choices":[{"id":1}]}`, fiber.StatusBadRequest},
		{"missing name", `{"choices":[]}`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PATCH", "/option", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestValidationKeyError(t *testing.T) {
	app := fiber.New()
	app.Post("/order", CreateOrder(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("POST", "/order", strings.NewReader(`{"order_items":[{"menu_item_id":2}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var body struct {
		KeyError string `json:"keyError"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.KeyError != "SpaceId" {
		t.Fatalf("keyError = %q, want SpaceId", body.KeyError)
	}

	if got := failedField(errors.New("boom")); got != "general" {
		t.Fatalf("failedField = %q, want general", got)
	}
}
