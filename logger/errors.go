package logger

import (
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/pipelog/core"
)

// ErrorHandler receives appender failures. The error is usually a
// *core.DestinationError naming the failing appender.
type ErrorHandler func(err error)

// DiscardErrors ignores appender failures
func DiscardErrors(error) {}

// NewZapErrorHandler reports appender failures as warnings on z. A nil z
// writes JSON to stderr.
func NewZapErrorHandler(z *zap.Logger) ErrorHandler {
	if z == nil {
		z = newStderrZap()
	}
	return func(err error) {
		var de *core.DestinationError
		if errors.As(err, &de) {
			z.Warn("appender failed",
				zap.String("appender", de.Appender),
				zap.NamedError("cause", de.Err),
			)
			return
		}
		z.Warn("appender failed", zap.Error(err))
	}
}

func newStderrZap() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	c := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
	return zap.New(c).Named("pipelog")
}

var (
	stderrHandler     ErrorHandler
	stderrHandlerOnce sync.Once
)

// defaultErrorHandler shares one stderr zap logger across all loggers.
func defaultErrorHandler() ErrorHandler {
	stderrHandlerOnce.Do(func() {
		stderrHandler = NewZapErrorHandler(nil)
	})
	return stderrHandler
}
