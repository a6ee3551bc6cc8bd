package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Sanitizer   SanitizerConfig   `yaml:"sanitizer"`
	Cleaner     CleanerConfig     `yaml:"cleaner"`
	Sink        SinkConfig        `yaml:"sink"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ChunkingConfig struct {
	TargetWords int     `yaml:"target_words" env:"SCRIBE_TARGET_WORDS"`
	// MinWords is nil when unset; 0 is a valid explicit value.
	MinWords    *int    `yaml:"min_words" env:"SCRIBE_MIN_WORDS"`
	Overflow    float64 `yaml:"overflow" env:"SCRIBE_OVERFLOW"`
}

type SanitizerConfig struct {
	ExtraPatterns []string `yaml:"extra_patterns"`
}

type CleanerConfig struct {
	Provider string   `yaml:"provider" env:"SCRIBE_CLEANER"`
	Model    string   `yaml:"model" env:"SCRIBE_CLEANER_MODEL"`
	APIKeys  []string `yaml:"api_keys" env:"GEMINI_API_KEYS" envSeparator:","`
	Prompt   string   `yaml:"prompt"`
	Command  string   `yaml:"command" env:"SCRIBE_CLEANER_COMMAND"`
	Args     []string `yaml:"args"`
}

type SinkConfig struct {
	Type   string      `yaml:"type" env:"SCRIBE_SINK"`
	Dir    string      `yaml:"dir" env:"SCRIBE_SINK_DIR"`
	Prefix string      `yaml:"prefix"`
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr       string `yaml:"addr" env:"REDIS_ADDR"`
	Password   string `yaml:"password" env:"REDIS_PASSWORD"`
	DB         int    `yaml:"db" env:"REDIS_DB"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	// MaxConcurrent bounds parallel cleaning calls; 0 leaves them unbounded.
	MaxConcurrent int `yaml:"max_concurrent" env:"SCRIBE_MAX_CONCURRENT"`
}

func (c *Config) Validate() error {
	if c.Chunking.TargetWords < 0 {
		return fmt.Errorf("chunking.target_words must not be negative")
	}
	if c.Chunking.MinWords != nil && *c.Chunking.MinWords < 0 {
		return fmt.Errorf("chunking.min_words must not be negative")
	}
	if c.Chunking.Overflow != 0 && c.Chunking.Overflow < 1 {
		return fmt.Errorf("chunking.overflow must be >= 1")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Chunking.TargetWords == 0 {
		c.Chunking.TargetWords = 500
	}
	if c.Chunking.MinWords == nil {
		c.Chunking.MinWords = new(int)
		*c.Chunking.MinWords = min(300, c.Chunking.TargetWords)
	}
	if c.Chunking.Overflow == 0 {
		c.Chunking.Overflow = 1.5
	}
	if *c.Chunking.MinWords > c.Chunking.TargetWords {
		return fmt.Errorf("chunking.min_words (%d) exceeds target_words (%d)", *c.Chunking.MinWords, c.Chunking.TargetWords)
	}

	c.Cleaner.Provider = strings.ToLower(c.Cleaner.Provider)
	if c.Cleaner.Provider == "" {
		c.Cleaner.Provider = "gemini"
	}
	switch c.Cleaner.Provider {
	case "gemini":
		if c.Cleaner.Model == "" {
			c.Cleaner.Model = "gemini-2.5-flash"
		}
	case "command":
		if c.Cleaner.Command == "" {
			return fmt.Errorf("cleaner.command is required for the command provider")
		}
	case "identity":
	default:
		return fmt.Errorf("cleaner.provider %q is not supported", c.Cleaner.Provider)
	}

	c.Sink.Type = strings.ToLower(c.Sink.Type)
	if c.Sink.Type == "" {
		c.Sink.Type = "filesystem"
	}
	switch c.Sink.Type {
	case "filesystem":
		if c.Sink.Dir == "" {
			c.Sink.Dir = os.TempDir()
		}
	case "redis":
		if c.Sink.Redis.Addr == "" {
			c.Sink.Redis.Addr = "localhost:6379"
		}
		if c.Sink.Redis.TTLMinutes == 0 {
			c.Sink.Redis.TTLMinutes = 60
		}
	case "memory":
	default:
		return fmt.Errorf("sink.type %q is not supported", c.Sink.Type)
	}
	if c.Sink.Prefix == "" {
		c.Sink.Prefix = "meeting-chunk"
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/cleaned"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
