package handler

import (
	"context"
	"sync"

	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type feedConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type kitchenFeed struct {
	clients map[string]feedConn
	cancel  context.CancelFunc
}

// kitchenHub fans the events of one redis subscription per kitchen out to
// every live feed connection of that kitchen.
type kitchenHub struct {
	mu     sync.Mutex
	feeds  map[uint]*kitchenFeed
	listen func(ctx context.Context, kitchenId uint, deliver func([]byte)) error
}

var hub = newKitchenHub(listenKitchen)

func newKitchenHub(listen func(ctx context.Context, kitchenId uint, deliver func([]byte)) error) *kitchenHub {
	return &kitchenHub{feeds: make(map[uint]*kitchenFeed), listen: listen}
}

// add registers a connection and starts the kitchen's subscription when it is
// the first one. It returns the number of connections of the kitchen.
func (h *kitchenHub) add(kitchenId uint, id string, conn feedConn) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed := h.feeds[kitchenId]
	if feed == nil {
		ctx, cancel := context.WithCancel(context.Background())
		feed = &kitchenFeed{clients: make(map[string]feedConn), cancel: cancel}
		h.feeds[kitchenId] = feed
		go h.pump(ctx, kitchenId, feed)
	}
	feed.clients[id] = conn
	return len(feed.clients)
}

// remove drops a connection and stops the subscription after the last one.
func (h *kitchenHub) remove(kitchenId uint, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed := h.feeds[kitchenId]
	if feed == nil {
		return
	}
	delete(feed.clients, id)
	if len(feed.clients) == 0 {
		feed.cancel()
		delete(h.feeds, kitchenId)
	}
}

func (h *kitchenHub) count(kitchenId uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if feed := h.feeds[kitchenId]; feed != nil {
		return len(feed.clients)
	}
	return 0
}

func (h *kitchenHub) pump(ctx context.Context, kitchenId uint, feed *kitchenFeed) {
	err := h.listen(ctx, kitchenId, func(payload []byte) {
		h.broadcast(feed, payload)
	})
	if err != nil && ctx.Err() == nil {
		utils.Log.WithError(err).WithField("kitchen_id", kitchenId).Warn("kitchen feed subscription ended")
	}
}

// broadcast writes payload to every connection of feed. A connection that
// fails is closed so its reader ends and removes it.
func (h *kitchenHub) broadcast(feed *kitchenFeed, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range feed.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(feed.clients, id)
		}
	}
}

func listenKitchen(ctx context.Context, kitchenId uint, deliver func([]byte)) error {
	pubsub, err := helper.SubscribeKitchen(ctx, kitchenId)
	if err != nil {
		return err
	}
	defer pubsub.Close()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			deliver([]byte(msg.Payload))
		}
	}
}

// KitchenWebsocketUpgrade lets only websocket upgrades from staff of the
// kitchen through to KitchenWebsocket.
func KitchenWebsocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if !guardKitchen(c, c.Locals("kitchenId").(uint)) {
		return nil
	}
	return c.Next()
}

// KitchenWebsocket streams the kitchen's events to one staff screen. The first
// frame is the current kitchen status.
func KitchenWebsocket(conn *websocket.Conn) {
	kitchenId := conn.Locals("kitchenId").(uint)
	subscriberId := uuid.NewString()
	log := utils.Log.WithFields(logrus.Fields{
		"kitchen_id":    kitchenId,
		"subscriber_id": subscriberId,
	})
	defer conn.Close()

	open, err := helper.GetKitchenStatus(database.DB, kitchenId, utils.Now())
	if err != nil {
		log.WithError(err).Warn("kitchen feed status")
		return
	}
	err = conn.WriteJSON(helper.KitchenEvent{
		Type:      helper.EventKitchenStatusChanged,
		KitchenId: kitchenId,
		Data:      model.KitchenStatus{IsOpen: open},
		At:        utils.Now(),
	})
	if err != nil {
		log.WithError(err).Debug("kitchen feed first frame")
		return
	}

	clients := hub.add(kitchenId, subscriberId, conn)
	log.WithField("clients", clients).Debug("kitchen feed opened")
	defer func() {
		hub.remove(kitchenId, subscriberId)
		log.Debug("kitchen feed closed")
	}()

	// reads only detect the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
