package ftpx

import (
	"go.uber.org/zap"

	"github.com/c2fo/ftpx/options"
)

const optionNameLogger = "logger"

// WithLogger returns loggerOpt implementation of NewOption
//
// WithLogger is used to receive the helper's diagnostics: skipped links and unsupported objects, working
// directory changes and per-file transfer sizes.  A nil logger leaves the default no-op logger in place.
func WithLogger(logger *zap.Logger) options.NewOption[Transfer] {
	return &loggerOpt{
		logger: logger,
	}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (l *loggerOpt) Apply(t *Transfer) {
	if l.logger != nil {
		t.logger = l.logger
	}
}

func (l *loggerOpt) NewOptionName() string {
	return optionNameLogger
}
