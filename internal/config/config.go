package config

import "fmt"

type Config struct {
	Course  CourseConfig  `yaml:"course"`
	Output  OutputConfig  `yaml:"output"`
	Prompt  PromptConfig  `yaml:"prompt"`
	Gateway GatewayConfig `yaml:"gateway"`
	Whisper WhisperConfig `yaml:"whisper"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type CourseConfig struct {
	Path string `yaml:"path"`
}

type OutputConfig struct {
	File string `yaml:"file"`
	Docx bool   `yaml:"docx"`
}

type PromptConfig struct {
	SystemInstruction string `yaml:"system_instruction"`
	ExtraInstruction  string `yaml:"extra_instruction"`
}

type GatewayConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	BaseURL     string `yaml:"base_url"`
	APIKeysFile string `yaml:"api_keys_file"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMS int  `yaml:"debounce_ms"`
}

func (c *Config) Validate() error {
	if c.Course.Path == "" {
		return fmt.Errorf("course.path is required")
	}
	if c.Prompt.SystemInstruction == "" {
		return fmt.Errorf("prompt.system_instruction is required")
	}
	if c.Gateway.Provider != "stub" && c.Gateway.APIKeysFile == "" {
		return fmt.Errorf("gateway.api_keys_file is required")
	}
	if c.Gateway.Provider == "chat" && c.Gateway.BaseURL == "" {
		return fmt.Errorf("gateway.base_url is required for the chat provider")
	}

	if c.Output.File == "" {
		c.Output.File = "study_guide.txt"
	}
	if c.Gateway.Provider == "" {
		c.Gateway.Provider = "gemini"
	}
	if c.Gateway.Model == "" {
		c.Gateway.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Watch.DebounceMS == 0 {
		c.Watch.DebounceMS = 2000
	}

	return nil
}
