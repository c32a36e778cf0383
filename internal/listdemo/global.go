package listdemo

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"linearlist/pkg/collection"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var engineNames = []string{EngineArray, EngineLinked, EngineBoth}

// 加载配置
//
// path 为空时从当前目录读取 config.<env>.yaml，文件不存在则使用默认值。
// 环境变量 LISTDEMO_* 和 flags 中已设置的参数覆盖文件中的值
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("engine", EngineBoth)
	v.SetDefault("capacity", collection.DefaultCapacity)
	v.SetDefault("node_limit", 0)
	v.SetDefault("union", []int32{30, 40, 50})

	v.SetEnvPrefix("LISTDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, flag := range map[string]string{
			"engine":     "engine",
			"capacity":   "capacity",
			"node_limit": "node-limit",
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", flag)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fmt.Sprintf("config.%s", os.Getenv("env")))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, errors.Wrap(err, "read config")
		}
		log.Warn().Err(err).Msg("config file not found, using defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Debug().Any("config", config).Str("file", v.ConfigFileUsed()).Msg("config loaded")
	return &config, nil
}

func (c *Config) validate() error {
	c.Engine = strings.ToLower(strings.TrimSpace(c.Engine))
	if !slices.Contains(engineNames, c.Engine) {
		return errors.Errorf("unknown engine %q, want one of %v", c.Engine, engineNames)
	}
	if c.Capacity <= 0 {
		c.Capacity = collection.DefaultCapacity
	}
	if c.NodeLimit < 0 {
		return errors.Errorf("node_limit must not be negative, got %d", c.NodeLimit)
	}
	return nil
}

// 按引擎名创建空表
func NewList(engine string, c *Config) (collection.List, error) {
	switch engine {
	case EngineArray:
		return collection.NewArrayList(c.Capacity), nil
	case EngineLinked:
		return collection.NewLinkedList(collection.WithNodeLimit(c.NodeLimit)), nil
	default:
		return nil, errors.Errorf("unknown engine %q", engine)
	}
}
