package config

import "fmt"

type Config struct {
	YTDLP   YTDLPConfig   `yaml:"ytdlp"`
	Server  ServerConfig  `yaml:"server"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

type YTDLPConfig struct {
	BinaryPath    string `yaml:"binary_path"`
	DefaultLang   string `yaml:"default_lang"`
	UpdateChannel string `yaml:"update_channel"`
	SkipUpdate    bool   `yaml:"skip_update"`
}

type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type BatchConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Inbox         string `yaml:"inbox"`
	Transcripts   string `yaml:"transcripts"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.YTDLP.BinaryPath == "" {
		c.YTDLP.BinaryPath = "yt-dlp"
	}
	if c.YTDLP.DefaultLang == "" {
		c.YTDLP.DefaultLang = "en"
	}
	if c.YTDLP.UpdateChannel == "" {
		c.YTDLP.UpdateChannel = "stable"
	}
	if c.Server.Name == "" {
		c.Server.Name = "YouTube Subtitle Downloader"
	}
	if c.Server.Version == "" {
		c.Server.Version = "1.0.0"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Batch.MaxConcurrent == 0 {
		c.Batch.MaxConcurrent = 2
	}

	if c.Batch.Enabled {
		if c.Batch.Inbox == "" {
			return fmt.Errorf("batch.inbox is required when batch mode is enabled")
		}
		if c.Batch.Transcripts == "" {
			return fmt.Errorf("batch.transcripts is required when batch mode is enabled")
		}
	}

	return nil
}
