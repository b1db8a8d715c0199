// Ininicializing common application configuration
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Layout LayoutConfig `mapstructure:"layout"`
	Assets AssetsConfig `mapstructure:"assets"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Idle_timeout time.Duration `mapstructure:"idle_timeout"`
	Mode         string        `mapstructure:"mode"`
	MaxUploadMB  int64         `mapstructure:"max_upload_mb"`
}

// LayoutConfig holds the process-wide placement parameters of the card.
type LayoutConfig struct {
	Padding   int     `mapstructure:"padding"`
	Margin    int     `mapstructure:"margin"`
	LogoScale float64 `mapstructure:"logo_scale"`
}

// AssetsConfig points at the fixed auxiliary files, relative to BaseDir.
type AssetsConfig struct {
	BaseDir    string `mapstructure:"base_dir"`
	TopLogo    string `mapstructure:"top_logo"`
	BottomLogo string `mapstructure:"bottom_logo"`
	Font       string `mapstructure:"font"`
}

type OutputConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// LoadConfig builds a viper instance from defaults and PROMO_* environment
// variables. No config file is read.
func LoadConfig() *viper.Viper {

	viperInstance := viper.New()

	setDefaults(viperInstance)

	viperInstance.SetEnvPrefix("promo")
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the configuration with every value at its default.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	c, err := ParseConfig(v)
	if err != nil {
		panic(err)
	}
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_upload_mb", 20)

	v.SetDefault("layout.padding", 70)
	v.SetDefault("layout.margin", 15)
	v.SetDefault("layout.logo_scale", 0.90)

	v.SetDefault("assets.base_dir", ".")
	v.SetDefault("assets.top_logo", "logos/pharmacy_logo.png")
	v.SetDefault("assets.bottom_logo", "logos/apteka.png")
	v.SetDefault("assets.font", "fonts/RobotoCondensed-Bold.ttf")

	v.SetDefault("output.path", "result.png")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}
