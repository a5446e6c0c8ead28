package logger

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the level of the global logger. It is exposed by the debug server.
var Level = zap.NewAtomicLevel()

//go:generate options-gen -out-filename=logger_options.gen.go -from-struct=Options
type Options struct {
	level          string `option:"mandatory" validate:"required,oneof=debug info warn error"`
	productionMode bool
}

func MustInit(opts Options) {
	if err := Init(opts); err != nil {
		panic(err)
	}
}

func Init(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("validate options: %v", err)
	}

	lvl, err := zapcore.ParseLevel(opts.level)
	if err != nil {
		return fmt.Errorf("invalid logger level: %v", err)
	}
	Level.SetLevel(lvl)

	encoder := zapcore.NewConsoleEncoder
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "component",
		TimeKey:        "T",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if opts.productionMode {
		encoder = zapcore.NewJSONEncoder
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	l := zap.New(zapcore.NewCore(encoder(encoderCfg), os.Stdout, Level))
	zap.ReplaceGlobals(l)

	return nil
}

func Sync() {
	if err := zap.L().Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		stdlog.Printf("cannot sync logger: %v", err)
	}
}
