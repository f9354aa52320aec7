package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, participant set)
// - default: Values common across all environments (timeouts, day bounds)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	Coordinator CoordinatorConfig
	Participant ParticipantConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// CoordinatorConfig drives a coordination run. Participants is a list of
// "name=baseURL" pairs naming every calendar service the coordinator may
// target.
type CoordinatorConfig struct {
	Participants        []string      `envconfig:"PARTICIPANTS" default:"bean=http://localhost:8001,joy=http://localhost:8002"`
	ProbeTimeout        time.Duration `envconfig:"PROBE_TIMEOUT" default:"2s"`
	CallTimeout         time.Duration `envconfig:"CALL_TIMEOUT" default:"10s"`
	RunTimeout          time.Duration `envconfig:"RUN_TIMEOUT" default:"60s"`
	CompensationTimeout time.Duration `envconfig:"COMPENSATION_TIMEOUT" default:"5s"`
	SlotStepMinutes     int           `envconfig:"SLOT_STEP_MINUTES" default:"60"`
	DayWindowStart      string        `envconfig:"DAY_WINDOW_START" default:"08:00"`
	DayWindowEnd        string        `envconfig:"DAY_WINDOW_END" default:"19:00"`
	SearchDays          int           `envconfig:"SEARCH_DAYS" default:"10"`
	Strategy            string        `envconfig:"STRATEGY" default:"earliest"`
}

// ParticipantConfig seeds one calendar service. Template defaults to Name
// when empty.
type ParticipantConfig struct {
	Name           string `envconfig:"PARTICIPANT_NAME" default:"bean"`
	Template       string `envconfig:"PARTICIPANT_TEMPLATE" default:""`
	Days           int    `envconfig:"PARTICIPANT_DAYS" default:"10"`
	DayWindowStart string `envconfig:"PARTICIPANT_DAY_START" default:"08:00"`
	DayWindowEnd   string `envconfig:"PARTICIPANT_DAY_END" default:"19:00"`
}

func (c ParticipantConfig) TemplateName() string {
	if c.Template != "" {
		return c.Template
	}
	return c.Name
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Coordinator: CoordinatorConfig{
			Participants:        []string{"bean=http://localhost:18001", "joy=http://localhost:18002"},
			ProbeTimeout:        time.Second,
			CallTimeout:         time.Second,
			RunTimeout:          5 * time.Second,
			CompensationTimeout: time.Second,
			SlotStepMinutes:     60,
			DayWindowStart:      "08:00",
			DayWindowEnd:        "19:00",
			SearchDays:          10,
			Strategy:            "earliest",
		},
		Participant: ParticipantConfig{
			Name:           "bean",
			Days:           10,
			DayWindowStart: "08:00",
			DayWindowEnd:   "19:00",
		},
	}
}
