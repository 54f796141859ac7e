package mailworker

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultInterval = 30 * time.Second

// Worker drains the report mail queue with at-least-once semantics.
type Worker struct {
	log           *zap.Logger
	locker        contracts.LockerService
	queue         contracts.MailQueueService
	sender        contracts.MailSender
	maxQueue      int
	throttleRetry int
	interval      time.Duration
	stop          chan struct{}
	stopOnce      sync.Once
}

func NewWorker(
	log *zap.Logger,
	lockerSvc contracts.LockerService,
	queue contracts.MailQueueService,
	sender contracts.MailSender,
	maxQueue int,
	throttleRetry int,
	interval time.Duration,
) *Worker {
	if maxQueue <= 0 {
		maxQueue = 1
	}
	if throttleRetry <= 0 {
		throttleRetry = 1
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Worker{
		log:           log,
		locker:        lockerSvc,
		queue:         queue,
		sender:        sender,
		maxQueue:      maxQueue,
		throttleRetry: throttleRetry,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

// Start begins the ticker loop. The returned function stops it and waits
// for the current tick to finish.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(w.interval)
	stopped := make(chan struct{})

	w.log.Info("mailworker.Worker started", zap.Duration("interval", w.interval))

	go func() {
		defer close(stopped)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case now := <-ticker.C:
				w.RunOnce(ctx, now)
			}
		}
	}()

	return func() {
		w.stopOnce.Do(func() { close(w.stop) })
		<-stopped
	}
}

// RunOnce processes one batch while holding the worker lock.
func (w *Worker) RunOnce(ctx context.Context, now time.Time) {
	ttl := w.interval - time.Second
	if ttl < time.Second {
		ttl = time.Second
	}
	acquired, lockVal, err := w.locker.TryLock(ctx, constvars.RedisKeyMailerWorkerLock, ttl)
	if err != nil {
		w.log.Warn("mailworker.RunOnce lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("mailworker.RunOnce lock held by another instance", zap.Time("now", now))
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyMailerWorkerLock, lockVal); err != nil {
			w.log.Error("mailworker.RunOnce unlock failed", zap.Error(err))
		}
	}()

	items, err := w.queue.FetchN(ctx, w.maxQueue)
	if err != nil {
		w.log.Error("mailworker.RunOnce fetch failed", zap.Error(err))
		return
	}

	for _, item := range items {
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item contracts.QueuedMail) {
	msg := item.Message
	err := w.sender.SendEmail(ctx, &msg.Email)
	if err == nil {
		w.ack(ctx, item, "send")
		w.log.Info("mailworker.processItem mail sent",
			zap.String(constvars.LoggingMessageIDKey, msg.ID),
			zap.String(constvars.LoggingVisitIDKey, msg.Email.VisitID),
		)
		return
	}

	msg.FailedCount++
	if msg.FailedCount >= w.throttleRetry {
		if dlqErr := w.queue.EnqueueToDeadQueue(ctx, &msg); dlqErr != nil {
			w.log.Error("mailworker.processItem enqueue to DLQ failed",
				zap.String(constvars.LoggingMessageIDKey, msg.ID),
				zap.Error(dlqErr),
			)
			return
		}
		w.ack(ctx, item, "DLQ")
		w.log.Warn("mailworker.processItem moved message to DLQ",
			zap.String(constvars.LoggingMessageIDKey, msg.ID),
			zap.Int(constvars.LoggingFailedCountKey, msg.FailedCount),
			zap.Error(err),
		)
		return
	}

	if requeueErr := w.queue.Reenqueue(ctx, &msg); requeueErr != nil {
		w.log.Error("mailworker.processItem reenqueue failed",
			zap.String(constvars.LoggingMessageIDKey, msg.ID),
			zap.Error(requeueErr),
		)
		return
	}
	w.ack(ctx, item, "reenqueue")
	w.log.Info("mailworker.processItem send failed, requeued",
		zap.String(constvars.LoggingMessageIDKey, msg.ID),
		zap.Int(constvars.LoggingFailedCountKey, msg.FailedCount),
		zap.Error(err),
	)
}

// ack settles the original delivery. A failed ack leaves the message
// unacked, so the broker redelivers it and the mail may go out twice.
func (w *Worker) ack(ctx context.Context, item contracts.QueuedMail, after string) {
	if err := w.queue.AckMessage(ctx, item.DeliveryTag); err != nil {
		w.log.Warn("mailworker.processItem ack failed after "+after,
			zap.String(constvars.LoggingMessageIDKey, item.Message.ID),
			zap.Uint64("delivery_tag", item.DeliveryTag),
			zap.Error(err),
		)
	}
}
