package smtp

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/drivers/mailer"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

var emailPattern = regexp.MustCompile(constvars.RegexEmail)

type smtpService struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	sendMail sendMailFunc
}

func NewSmtpService(client *mailer.SMTPClient, logger *zap.Logger) contracts.MailSender {
	return &smtpService{
		Client:   client,
		Log:      logger,
		sendMail: smtp.SendMail,
	}
}

func (svc *smtpService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	requestID := utils.GetRequestID(ctx)

	recipients := make([]string, 0, len(payload.To)+len(payload.Cc)+len(payload.Bcc))
	for _, group := range [][]string{payload.To, payload.Cc, payload.Bcc} {
		for _, address := range group {
			if ValidateEmail(address) {
				recipients = append(recipients, address)
			}
		}
	}
	if len(recipients) == 0 {
		return exceptions.ErrSMTPSendEmail(fmt.Errorf("no valid recipient"), svc.Client.Host)
	}

	from := payload.From
	if from == "" {
		from = svc.Client.EmailSender
	}

	msg := BuildMessage(payload)
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	if err := svc.sendMail(addr, svc.Client.Auth, from, recipients, msg); err != nil {
		svc.Log.Error("smtpService.SendEmail error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, payload.VisitID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.Info("smtpService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, payload.VisitID),
		zap.Int(constvars.LoggingCountKey, len(recipients)),
	)
	return nil
}

// BuildMessage renders the HTML body when present and the text body otherwise.
func BuildMessage(payload *requests.EmailPayload) []byte {
	to := strings.Join(payload.To, ", ")
	subject := mime.QEncoding.Encode("utf-8", payload.Subject)
	if payload.HTMLCode != "" {
		return []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, subject, payload.HTMLCode))
	}
	return []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, to, subject, payload.TextBody))
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
