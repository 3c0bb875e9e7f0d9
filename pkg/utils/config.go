package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Order    OrderConfig
	Amqp     AmqpConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type OrderConfig struct {
	// Unit price applied to every ticket when computing invoice totals.
	TicketPrice float64
}

type AmqpConfig struct {
	URL     string
	Queue   string
	Enabled bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TICKET_PRICE", 100.0)
	viper.SetDefault("AMQP_ENABLED", false)
	viper.SetDefault("AMQP_QUEUE", "user-registration")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Order: OrderConfig{
			TicketPrice: viper.GetFloat64("TICKET_PRICE"),
		},
		Amqp: AmqpConfig{
			URL:     viper.GetString("AMQP_URL"),
			Queue:   viper.GetString("AMQP_QUEUE"),
			Enabled: viper.GetBool("AMQP_ENABLED"),
		},
	}

	return config, nil
}
