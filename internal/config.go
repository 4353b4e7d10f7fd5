package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App  ApplicationConfig `yaml:"app"`
	Trip TripConfig        `yaml:"trip"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Trip.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// TripConfig holds the itinerary source, artifact, and display settings.
//
// Year is the reference year that "M/D" day labels resolve against; the
// source carries no year of its own.
type TripConfig struct {
	Title      string `yaml:"title"`
	Year       int    `yaml:"year"`
	SourcePath string `yaml:"source_path"`
	DataPath   string `yaml:"data_path"`
	ICalPath   string `yaml:"ical_path"`
}

// Validate validates the trip configuration.
func (c *TripConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Year, validation.Required, validation.Min(1970), validation.Max(9999)),
		validation.Field(&c.SourcePath, validation.Required),
		validation.Field(&c.DataPath, validation.Required),
		validation.Field(&c.ICalPath, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
// The relative paths match the spreadsheet-export workflow: the CSV lands
// in docs/, the generated artifacts in data/.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Trip: TripConfig{
			Title:      "OKINAWA GOLF TRIP 2026",
			Year:       2026,
			SourcePath: "docs/sequences_data.csv",
			DataPath:   "data/trip.json",
			ICalPath:   "data/trip.ics",
		},
	}
}
