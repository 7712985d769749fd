package helper

import (
	"context"
	"sync"
	"time"

	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const staleOrderItemInterval = 5 * time.Minute

var (
	statusScheduler *cron.Cron
	staleScheduler  gocron.Scheduler
)

// kitchenStatusTracker remembers the last availability seen per kitchen so
// only changes get broadcast.
type kitchenStatusTracker struct {
	mu   sync.Mutex
	last map[uint]bool
}

func newKitchenStatusTracker() *kitchenStatusTracker {
	return &kitchenStatusTracker{last: make(map[uint]bool)}
}

// observe records open for kitchenId and reports whether it differs from the
// previous observation. The first observation is never a change.
func (t *kitchenStatusTracker) observe(kitchenId uint, open bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	previous, seen := t.last[kitchenId]
	t.last[kitchenId] = open
	return seen && previous != open
}

// broadcastKitchenStatusChanges evaluates every kitchen at now and publishes a
// status event for each one whose availability flipped. Kitchens with a broken
// schedule are logged and skipped.
func broadcastKitchenStatusChanges(db *gorm.DB, tracker *kitchenStatusTracker, now time.Time) (int, error) {
	var kitchens []model.Kitchen
	if err := db.Preload("OpeningHours").Find(&kitchens).Error; err != nil {
		return 0, err
	}

	changed := 0
	for _, kitchen := range kitchens {
		open, err := IsKitchenOpen(kitchen, now)
		if err != nil {
			utils.Log.WithError(err).WithField("kitchen_id", kitchen.ID).Warn("evaluate kitchen availability")
			continue
		}
		if !tracker.observe(kitchen.ID, open) {
			continue
		}
		changed++
		PublishKitchenEvent(context.Background(), kitchen.ID, EventKitchenStatusChanged, model.KitchenStatus{IsOpen: open})
	}
	return changed, nil
}

func StartKitchenStatusScheduler(db *gorm.DB) error {
	tracker := newKitchenStatusTracker()
	statusScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := statusScheduler.AddFunc("* * * * *", func() {
		changed, err := broadcastKitchenStatusChanges(db, tracker, utils.Now())
		if err != nil {
			utils.Log.WithError(err).Error("kitchen status broadcast")
			return
		}
		if changed > 0 {
			utils.Log.WithField("kitchens", changed).Info("kitchen availability changed")
		}
	})
	if err != nil {
		return err
	}

	statusScheduler.Start()
	utils.Log.Info("kitchen status scheduler started")
	return nil
}

func StopKitchenStatusScheduler() {
	if statusScheduler != nil {
		<-statusScheduler.Stop().Done()
		utils.Log.Info("kitchen status scheduler stopped")
	}
}

func StartStaleOrderItemScheduler(db *gorm.DB, maxAge time.Duration) error {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(staleOrderItemInterval),
		gocron.NewTask(func() {
			expired, err := ExpireStaleOrderItems(db, utils.Now(), maxAge)
			if err != nil {
				utils.Log.WithError(err).Error("expire stale order items")
				return
			}
			if expired > 0 {
				utils.Log.WithFields(logrus.Fields{
					"cancelled": expired,
					"max_age":   maxAge.String(),
				}).Info("stale order items cancelled")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	staleScheduler = s
	s.Start()
	utils.Log.WithField("every", staleOrderItemInterval.String()).Info("stale order item scheduler started")
	return nil
}

func StopStaleOrderItemScheduler() {
	if staleScheduler != nil {
		if err := staleScheduler.Shutdown(); err != nil {
			utils.Log.WithError(err).Warn("stop stale order item scheduler")
		}
	}
}
