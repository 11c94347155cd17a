package mailer

import (
	"context"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// LogNotifier simulates delivery by writing the message to the log.
// It is selected when no email relay endpoint is configured, mirroring
// the relay's own simulated mode for local development.
type LogNotifier struct {
	log      logger.Logger
	fromName string
}

func NewLogNotifier(fromName string, log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log, fromName: fromName}
}

func (n *LogNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.log.Info("simulated email",
		logger.String("to", to),
		logger.String("from", n.fromName),
		logger.String("subject", subject),
		logger.String("body", body))
	return nil
}
