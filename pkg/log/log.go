package log

import (
	"os"

	"github.com/seqdash/seqdash/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// Binaries
	LogNameAPI  = "api"
	LogNameTest = "test"

	// Others
	LogNameRequests = "requests"
	LogNameSource   = "source"
)

func InitZap(logName string) {

	var options = []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
		zap.AddCaller(),
	}

	if config.IsLocal() {
		options = append(options, zap.Development())
	}

	logger := zap.New(getStandardCore(), options...)
	logger = logger.Named(logName)

	zap.ReplaceGlobals(logger)
}

func getStandardCore() zapcore.Core {

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	output := zapcore.Lock(os.Stdout)
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)

	return zapcore.NewCore(encoder, output, level)
}

func Flush() {
	_ = zap.L().Sync()
}
