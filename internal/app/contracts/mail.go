package contracts

import (
	"context"
	"podium-service/internal/pkg/dto/requests"
)

type MailQueueService interface {
	Enqueue(ctx context.Context, msg *MailMessage) error
	Reenqueue(ctx context.Context, msg *MailMessage) error
	EnqueueToDeadQueue(ctx context.Context, msg *MailMessage) error
	FetchN(ctx context.Context, max int) ([]QueuedMail, error)
	AckMessage(ctx context.Context, deliveryTag uint64) error
}

// MailMessage is the payload carried on the report mail queue.
type MailMessage struct {
	ID          string                `json:"id"`
	FailedCount int                   `json:"failed_count"`
	Email       requests.EmailPayload `json:"email"`
}

type QueuedMail struct {
	DeliveryTag uint64
	Message     MailMessage
}

type MailSender interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}
