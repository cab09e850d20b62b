package nsq

import (
	"github.com/piresc/loanhub/internal/pkg/logger"
)

// nsqLogger routes go-nsq's internal log lines into the zap logger
type nsqLogger struct{}

func newNSQLogger() nsqLogger {
	return nsqLogger{}
}

func (nsqLogger) Output(calldepth int, s string) error {
	logger.Warn("nsq", logger.String("detail", s))
	return nil
}
