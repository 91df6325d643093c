package riverjobs

import (
	"context"
	"errors"
	"time"

	"github.com/riverqueue/river"
	log "github.com/sirupsen/logrus"

	"github.com/socialmotion/backend/core"
)

type PurgeExpiredOffersArgs struct {
	RetentionDays int `json:"retention_days,omitempty"`
	BatchSize     int `json:"batch_size,omitempty"`
}

func (PurgeExpiredOffersArgs) Kind() string { return "socialmotion_purge_expired_offers" }

func (args PurgeExpiredOffersArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue: river.QueueDefault,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
		},
	}
}

// PurgeExpiredOffersWorker deletes price offers whose expiry passed more than
// RetentionDays ago. Expired offers stay visible until then so a visitor who
// follows a stale link gets a proper expiry message instead of a 404.
type PurgeExpiredOffersWorker struct {
	river.WorkerDefaults[PurgeExpiredOffersArgs]
	svc *core.Service
}

func NewPurgeExpiredOffersWorker(svc *core.Service) *PurgeExpiredOffersWorker {
	return &PurgeExpiredOffersWorker{svc: svc}
}

func (w *PurgeExpiredOffersWorker) Timeout(*river.Job[PurgeExpiredOffersArgs]) time.Duration {
	return 10 * time.Minute
}

func (w *PurgeExpiredOffersWorker) Work(ctx context.Context, job *river.Job[PurgeExpiredOffersArgs]) error {
	if w == nil || w.svc == nil {
		return errors.New("offer purge: service not configured")
	}
	retention := job.Args.RetentionDays
	if retention <= 0 {
		retention = 30
	}
	batch := job.Args.BatchSize
	if batch <= 0 {
		batch = 500
	}

	n, err := w.svc.PurgeExpiredOffers(ctx, retention, batch)
	if err != nil {
		return err
	}
	if n > 0 {
		log.WithField("deleted", n).Info("purged expired price offers")
	}
	return nil
}
