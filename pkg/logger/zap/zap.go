package zap

import (
	"os"

	"github.com/Ruhan116/CLIR/pkg/logger/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: JSON encoding to stdout with the
// configured level and timestamp layout.
func New(cfg config.Configuration) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		zapcore.Level(cfg.Level),
	)

	return zap.New(core, zap.AddCaller()), nil
}
