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
	MultilevelQueueHigh   int
	MultilevelQueueLow    int
	LogLevel              string
	LogFormat             string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits the program when it is unreadable.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads the config file at path, or config.yaml from the working
// directory when path is empty. A missing default file is not an error.
// Environment variables override file values; the name is SCHEDULER_ plus the
// key path with dots as underscores, so scheduler.round_robin.time_quantum is
// SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM (see config.yaml).
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_queue.quantum_high", 2)
	v.SetDefault("scheduler.multilevel_queue.quantum_low", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelQueueHigh:   v.GetInt("scheduler.multilevel_queue.quantum_high"),
		MultilevelQueueLow:    v.GetInt("scheduler.multilevel_queue.quantum_low"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}, nil
}
