package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	ReportFormat          string
}

var once sync.Once
var config *SchedulerConfig

// LoadSchedulerConfig reads config.yaml from configPath. Every key can be
// overridden from the environment, e.g. SCHEDULER_PORT.
func LoadSchedulerConfig(configPath string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 5)
	v.SetDefault("report.format", "table")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		ReportFormat:          v.GetString("report.format"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.RoundRobinTimeQuantum <= 0 {
		return errors.New("scheduler.round_robin.time_quantum must be positive")
	}
	if c.ReportFormat != "text" && c.ReportFormat != "table" {
		return fmt.Errorf("report.format must be text or table, got %q", c.ReportFormat)
	}
	return nil
}

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}
