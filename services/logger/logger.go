package logger

import "go.uber.org/zap"

// New zap logger for the bot service
func New() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		// logging must never take the bot down
		return zap.NewNop()
	}

	return logger.Named("telegram-consultant")
}
