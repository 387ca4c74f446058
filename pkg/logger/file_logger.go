package logger

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFileLogger returns a JSON zap logger for the access log. The file is
// rotated with the same limits as the application log.
func NewFileLogger(filePath string) (*zap.Logger, error) {
	if filePath == "" {
		return nil, errors.New("access log path is empty")
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotated(filePath)),
		zap.InfoLevel,
	)
	return zap.New(core), nil
}
