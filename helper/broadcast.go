package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant_manager/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	EventOrderCreated           = "order.created"
	EventOrderItemStatusChanged = "order_item.status_changed"
	EventCallCreated            = "call.created"
	EventCallResolved           = "call.resolved"
	EventKitchenStatusChanged   = "kitchen.status_changed"
)

var ErrRedisNotConfigured = errors.New("redis client is not configured")

var redisClient *redis.Client

// publish sends a payload to a channel. Tests swap it to capture events.
var publish = func(ctx context.Context, channel string, payload []byte) error {
	if redisClient == nil {
		return ErrRedisNotConfigured
	}
	return redisClient.Publish(ctx, channel, payload).Err()
}

// KitchenEvent is what staff screens receive on a kitchen's live feed.
type KitchenEvent struct {
	Type      string    `json:"type"`
	KitchenId uint      `json:"kitchenId"`
	Data      any       `json:"data"`
	At        time.Time `json:"at"`
}

func InitRedis(addr string) *redis.Client {
	redisClient = redis.NewClient(&redis.Options{Addr: addr})
	return redisClient
}

func CloseRedis() {
	if redisClient != nil {
		redisClient.Close()
	}
}

func KitchenChannel(kitchenId uint) string {
	return fmt.Sprintf("kitchen:%d", kitchenId)
}

// PublishKitchenEvent broadcasts an event after the change that caused it has
// been committed. Delivery is best effort and failures are only logged.
func PublishKitchenEvent(ctx context.Context, kitchenId uint, eventType string, data any) {
	event := KitchenEvent{Type: eventType, KitchenId: kitchenId, Data: data, At: utils.Now()}
	payload, err := json.Marshal(event)
	if err != nil {
		utils.Log.WithError(err).WithField("event", eventType).Error("encode kitchen event")
		return
	}

	if err := publish(ctx, KitchenChannel(kitchenId), payload); err != nil {
		entry := utils.Log.WithError(err).WithFields(logrus.Fields{
			"event":      eventType,
			"kitchen_id": kitchenId,
		})
		if errors.Is(err, ErrRedisNotConfigured) {
			entry.Debug("kitchen event dropped")
			return
		}
		entry.Warn("publish kitchen event")
	}
}

func SubscribeKitchen(ctx context.Context, kitchenId uint) (*redis.PubSub, error) {
	if redisClient == nil {
		return nil, ErrRedisNotConfigured
	}
	pubsub := redisClient.Subscribe(ctx, KitchenChannel(kitchenId))
	// Receive waits for the subscription to be confirmed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}
	return pubsub, nil
}
