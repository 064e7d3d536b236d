package inspect

import (
	"os"
	"path"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogger builds a json logger writing to a daily rotated file, plus stderr when Log.Console is set.
// An empty Log.Path logs to stderr only.
func (i *Inspector) initLogger() error {
	cfg := i.config.Log

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if cfg.Path != "" {
		w, err := newRotator(cfg)
		if err != nil {
			return errors.Wrap(err, "create log rotator")
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), level))
	}

	if cfg.Path == "" || cfg.Console {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.Lock(os.Stderr), level))
	}

	i.logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	return nil
}

func newRotator(cfg log) (*rotatelogs.RotateLogs, error) {
	logPath, err := getAbsLogPath(cfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "get abs log path")
	}

	age := cfg.Age
	if age <= 0 {
		age = 7
	}

	rotationTime := cfg.RotationTime
	if rotationTime <= 0 {
		rotationTime = 24 * time.Hour
	}

	return rotatelogs.New(
		logPath+"_%Y%m%d",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(time.Duration(age)*24*time.Hour),
		rotatelogs.WithRotationTime(rotationTime),
	)
}

func getAbsLogPath(p string) (string, error) {
	if path.IsAbs(p) {
		return p, nil
	}

	binPath, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(binPath), p), nil
}
