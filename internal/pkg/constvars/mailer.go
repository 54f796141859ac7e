package constvars

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailReportSubjectFormat         = "Hemos recibido tu anamnesis – %s"
)

const (
	MailQueueName           = "podium_report_mail_queue"
	MailDeadLetterQueueName = "podium_report_mail_dlq"
)
