package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Questions struct {
		TTL string `yaml:"ttl"`
	} `yaml:"questions"`
	Game Game `yaml:"game"`
}

// Game holds the session tunables. Session length and per-question points are
// configuration, not constants.
type Game struct {
	QuestionsPerSession int `yaml:"questions_per_session"`
	PointsPerQuestion   int `yaml:"points_per_question"`
	LeaderboardLimit    int `yaml:"leaderboard_limit"`
	SubmitRetries       int `yaml:"submit_retries"`
}

const (
	defaultQuestionsPerSession = 10
	defaultPointsPerQuestion   = 10
	defaultLeaderboardLimit    = 10
	defaultSubmitRetries       = 3
)

// Load reads YAML config from path and fills in game defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Game = cfg.Game.withDefaults()
	return cfg, nil
}

func (g Game) withDefaults() Game {
	if g.QuestionsPerSession <= 0 {
		g.QuestionsPerSession = defaultQuestionsPerSession
	}
	if g.PointsPerQuestion <= 0 {
		g.PointsPerQuestion = defaultPointsPerQuestion
	}
	if g.LeaderboardLimit <= 0 {
		g.LeaderboardLimit = defaultLeaderboardLimit
	}
	if g.SubmitRetries <= 0 {
		g.SubmitRetries = defaultSubmitRetries
	}
	return g
}

// DefaultGame returns the game settings used when no config file is present.
func DefaultGame() Game {
	return Game{}.withDefaults()
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
