package mailer

import "go.uber.org/zap"

// LogClient renders mail and logs it instead of delivering. Used when no SMTP
// host is configured.
type LogClient struct {
	logger *zap.SugaredLogger
}

func NewLogClient(logger *zap.SugaredLogger) *LogClient {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LogClient{logger: logger}
}

func (l *LogClient) Send(templateFile, username, email string, data any) (int, error) {
	subject, _, err := render(templateFile, data)
	if err != nil {
		return -1, err
	}
	l.logger.Infow("mail not sent, smtp disabled", "to", email, "name", username, "subject", subject)
	return 200, nil
}
