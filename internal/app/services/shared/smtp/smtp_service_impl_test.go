package smtp

import (
	"context"
	"errors"
	"net/smtp"
	"podium-service/internal/app/drivers/mailer"
	"podium-service/internal/pkg/dto/requests"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(captured *capturedMail, sendErr error) *smtpService {
	return &smtpService{
		Client: &mailer.SMTPClient{Host: "smtp.local", Port: 2525, EmailSender: "clinic@podium.test"},
		Log:    zap.NewNop(),
		sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			captured.addr = addr
			captured.from = from
			captured.to = to
			captured.msg = string(msg)
			return sendErr
		},
	}
}

func TestSmtpService_SendEmail(t *testing.T) {
	t.Run("plain text with default sender", func(t *testing.T) {
		var captured capturedMail
		svc := newTestService(&captured, nil)

		err := svc.SendEmail(context.Background(), &requests.EmailPayload{
			Subject:  "Hemos recibido tu anamnesis – Podium",
			To:       []string{"ana@example.com", "not-an-email"},
			Bcc:      []string{"archivo@podium.test"},
			TextBody: "Hola Ana,",
		})
		require.NoError(t, err)
		assert.Equal(t, "smtp.local:2525", captured.addr)
		assert.Equal(t, "clinic@podium.test", captured.from)
		assert.Equal(t, []string{"ana@example.com", "archivo@podium.test"}, captured.to)
		assert.Contains(t, captured.msg, "Subject: =?utf-8?q?")
		assert.Contains(t, captured.msg, "text/plain")
		assert.True(t, strings.Contains(captured.msg, "Hola Ana,"))
		assert.NotContains(t, captured.msg, "archivo@podium.test")
	})

	t.Run("html body wins", func(t *testing.T) {
		var captured capturedMail
		svc := newTestService(&captured, nil)

		err := svc.SendEmail(context.Background(), &requests.EmailPayload{
			From:     "fisio@podium.test",
			To:       []string{"ana@example.com"},
			Subject:  "Informe",
			HTMLCode: "<p>Hola</p>",
			TextBody: "Hola",
		})
		require.NoError(t, err)
		assert.Equal(t, "fisio@podium.test", captured.from)
		assert.Contains(t, captured.msg, "text/html")
	})

	t.Run("no valid recipient", func(t *testing.T) {
		var captured capturedMail
		err := newTestService(&captured, nil).SendEmail(context.Background(), &requests.EmailPayload{To: []string{"nope"}})
		assert.Error(t, err)
		assert.Empty(t, captured.addr)
	})

	t.Run("transport failure", func(t *testing.T) {
		var captured capturedMail
		err := newTestService(&captured, errors.New("connection refused")).SendEmail(context.Background(), &requests.EmailPayload{To: []string{"ana@example.com"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
