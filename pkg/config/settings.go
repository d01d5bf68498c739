package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 CIRCULARSLIDER_VERBOSE=true
const EnvPrefix = "CIRCULARSLIDER"

// Settings 运行设置
//
// 优先级（从高到低）：命令行参数、环境变量、设置文件、默认值
type Settings struct {
	SlidersPath string `mapstructure:"sliders"` // 滑块定义文件
	Verbose     bool   `mapstructure:"verbose"` // 输出调试日志
	Seed        int64  `mapstructure:"seed"`    // 初始角度随机种子，0 表示按时间取种子
}

// RegisterFlags 注册设置相关的命令行参数
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "settings file (yaml)")
	flags.String("sliders", DefaultSlidersPath, "slider definitions file")
	flags.BoolP("verbose", "v", false, "print debug logs")
	flags.Int64("seed", 0, "random seed for start angles (0 = time based)")
}

// LoadSettings 读取运行设置
// flags 可以为 nil（例如移动端没有命令行）
func LoadSettings(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling settings: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("config", "")
	v.SetDefault("sliders", DefaultSlidersPath)
	v.SetDefault("verbose", false)
	v.SetDefault("seed", 0)
}
