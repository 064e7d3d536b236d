package inspect

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type config struct {
	// 日志配置
	Log log

	DecodeMeta bool   // 解析script data tag中的onMetaData (AMF0)
	ReportPath string // yaml报告输出路径, 为空时输出到stdout
}

type log struct {
	Path         string
	Level        string
	RotationTime time.Duration
	Age          int  // 保留天数
	Console      bool // 同时输出到stderr
}

func (i *Inspector) loadConfig(configPath string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetDefault("DecodeMeta", true)
	v.SetDefault("Log.Path", "logs/flvtag.log")
	v.SetDefault("Log.Level", "info")

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrap(err, "read in config")
	}

	if i.config == nil {
		i.config = new(config)
	}

	if err := v.Unmarshal(i.config); err != nil {
		return errors.Wrap(err, "Unmarshal config")
	}

	return nil
}

func getAbsConfigPath() (string, error) {
	binPath, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(filepath.Dir(binPath), "config")
	return configPath, nil
}
