package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/api/metrics"
	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	persistTimeout = 5 * time.Second
)

// Dispatcher fans notifications out to a fixed set of workers using
// consistent hashing on the recipient id, so one recipient's feed is
// written in the order events were raised.
type Dispatcher struct {
	workers []chan ports.NotificationInput
	repo    ports.NotificationRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.NotificationRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues a notification for asynchronous persistence. If the
// recipient's worker channel is full the write falls through to a
// synchronous insert so the notification is not lost.
func (d *Dispatcher) Notify(in ports.NotificationInput) {
	select {
	case d.workers[d.shardIndex(in.RecipientID)] <- in:
	default:
		d.persist(context.Background(), in)
	}
}

// shardIndex maps a recipient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipientID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	label := strconv.Itoa(id)
	for {
		metrics.NotificationsQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			d.persist(ctx, in)
		}
	}
}

func (d *Dispatcher) persist(ctx context.Context, in ports.NotificationInput) {
	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	n := &domain.Notification{
		RecipientID: in.RecipientID,
		ActorID:     in.ActorID,
		Kind:        in.Kind,
		Text:        in.Text,
		PitchID:     in.PitchID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := d.repo.Insert(ctx, n); err != nil {
		metrics.NotificationsErrorsTotal.WithLabelValues(in.Kind).Inc()
		d.log.Error().Err(err).
			Str("recipient_id", in.RecipientID).
			Str("kind", in.Kind).
			Msg("failed to persist notification")
		return
	}
	metrics.NotificationsDeliveredTotal.WithLabelValues(in.Kind).Inc()
}
