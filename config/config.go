package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Schedule ScheduleConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// ScheduleConfig carries generation defaults applied when a request omits them.
type ScheduleConfig struct {
	DefaultMaxAppointments int
	MaxRangeDays           int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	maxAppointments := viper.GetInt("SCHEDULE_DEFAULT_MAX_APPOINTMENTS")
	if maxAppointments <= 0 {
		maxAppointments = 1
	}

	maxRangeDays := viper.GetInt("SCHEDULE_MAX_RANGE_DAYS")
	if maxRangeDays <= 0 {
		maxRangeDays = 90
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Schedule: ScheduleConfig{
			DefaultMaxAppointments: maxAppointments,
			MaxRangeDays:           maxRangeDays,
		},
	}

	return config, nil
}
