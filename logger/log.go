package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds the production JSON logger, installs it as the zap global
// and returns it.
func InitLogger(environment string, verbose bool) (*zap.Logger, error) {
	var zapLogLevel zapcore.Level = zap.InfoLevel
	if verbose {
		zapLogLevel = zap.DebugLevel
	}

	zapConfig := zap.NewProductionConfig()

	zapConfig.Level.SetLevel(zapLogLevel)
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.OutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	logger = logger.WithOptions(zap.AddStacktrace(zapcore.FatalLevel))
	if environment != "" {
		logger = logger.With(zap.String("environment", environment))
	}

	zap.ReplaceGlobals(logger)

	return logger, nil
}
