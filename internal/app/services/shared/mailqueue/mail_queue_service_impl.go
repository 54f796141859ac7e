package mailqueue

import (
	"context"
	"fmt"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes report mails with confirms and lets the worker pull
// them back in batches.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the durable queue and its DLQ, sets QoS and enables
// publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range []string{constvars.MailQueueName, constvars.MailDeadLetterQueueName} {
		_, err = ch.QueueDeclare(
			queue, // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

var _ contracts.MailQueueService = (*Service)(nil)

func (s *Service) Enqueue(ctx context.Context, msg *contracts.MailMessage) error {
	s.log.Info("MailQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMessageIDKey, msg.ID),
	)
	return s.publishMessage(ctx, constvars.MailQueueName, msg)
}

// Reenqueue puts the message at the tail of the standard queue.
func (s *Service) Reenqueue(ctx context.Context, msg *contracts.MailMessage) error {
	s.log.Info("MailQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMessageIDKey, msg.ID),
		zap.Int(constvars.LoggingFailedCountKey, msg.FailedCount),
	)
	return s.publishMessage(ctx, constvars.MailQueueName, msg)
}

func (s *Service) EnqueueToDeadQueue(ctx context.Context, msg *contracts.MailMessage) error {
	s.log.Info("MailQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMessageIDKey, msg.ID),
	)
	return s.publishMessage(ctx, constvars.MailDeadLetterQueueName, msg)
}

// FetchN pulls up to max messages with basic.get and manual ack.
func (s *Service) FetchN(ctx context.Context, max int) ([]contracts.QueuedMail, error) {
	if max <= 0 {
		max = 1
	}
	items := make([]contracts.QueuedMail, 0, max)

	for i := 0; i < max; i++ {
		d, ok, err := s.ch.Get(constvars.MailQueueName, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var payload contracts.MailMessage
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// poison message
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, constvars.MailDeadLetterQueueName, d.Body)
			continue
		}
		items = append(items, contracts.QueuedMail{DeliveryTag: d.DeliveryTag, Message: payload})
	}

	s.log.Debug("MailQueue.FetchN fetched",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int(constvars.LoggingCountKey, len(items)),
	)
	return items, nil
}

func (s *Service) AckMessage(ctx context.Context, deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

func (s *Service) Close() error {
	return s.ch.Close()
}

func (s *Service) publishMessage(ctx context.Context, queue string, msg *contracts.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
