package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Course: CourseConfig{Path: "testdata/course"},
				Prompt: PromptConfig{SystemInstruction: "Summarize each lesson."},
				Gateway: GatewayConfig{
					Provider:    "gemini",
					APIKeysFile: "keys.txt",
				},
			},
			wantErr: false,
		},
		{
			name: "missing course path",
			config: Config{
				Prompt: PromptConfig{SystemInstruction: "Summarize each lesson."},
				Gateway: GatewayConfig{
					APIKeysFile: "keys.txt",
				},
			},
			wantErr: true,
		},
		{
			name: "missing system instruction",
			config: Config{
				Course: CourseConfig{Path: "testdata/course"},
				Gateway: GatewayConfig{
					APIKeysFile: "keys.txt",
				},
			},
			wantErr: true,
		},
		{
			name: "missing keys file",
			config: Config{
				Course: CourseConfig{Path: "testdata/course"},
				Prompt: PromptConfig{SystemInstruction: "Summarize each lesson."},
			},
			wantErr: true,
		},
		{
			name: "stub provider needs no keys file",
			config: Config{
				Course:  CourseConfig{Path: "testdata/course"},
				Prompt:  PromptConfig{SystemInstruction: "Summarize each lesson."},
				Gateway: GatewayConfig{Provider: "stub"},
			},
			wantErr: false,
		},
		{
			name: "chat provider needs base url",
			config: Config{
				Course: CourseConfig{Path: "testdata/course"},
				Prompt: PromptConfig{SystemInstruction: "Summarize each lesson."},
				Gateway: GatewayConfig{
					Provider:    "chat",
					APIKeysFile: "keys.txt",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Course:  CourseConfig{Path: "testdata/course"},
		Prompt:  PromptConfig{SystemInstruction: "Summarize each lesson."},
		Gateway: GatewayConfig{APIKeysFile: "keys.txt"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gateway.Provider != "gemini" {
		t.Errorf("Provider = %v, want gemini", cfg.Gateway.Provider)
	}
	if cfg.Gateway.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gateway.Model)
	}
	if cfg.Output.File != "study_guide.txt" {
		t.Errorf("Output.File = %v, want study_guide.txt", cfg.Output.File)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
	if cfg.Watch.DebounceMS != 2000 {
		t.Errorf("Watch.DebounceMS = %v, want 2000", cfg.Watch.DebounceMS)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
course:
  path: "testdata/course"

output:
  file: "guide.txt"
  docx: true

prompt:
  system_instruction: "Summarize each lesson for revision."
  extra_instruction: "Answer in Vietnamese."

gateway:
  provider: "gemini"
  model: "gemini-2.5-flash"
  api_keys_file: "keys.txt"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Course.Path != "testdata/course" {
		t.Errorf("Course.Path = %v, want %v", cfg.Course.Path, "testdata/course")
	}

	if cfg.Output.File != "guide.txt" {
		t.Errorf("Output.File = %v, want %v", cfg.Output.File, "guide.txt")
	}

	if !cfg.Output.Docx {
		t.Error("Output.Docx = false, want true")
	}

	if cfg.Prompt.ExtraInstruction != "Answer in Vietnamese." {
		t.Errorf("ExtraInstruction = %v, want %v", cfg.Prompt.ExtraInstruction, "Answer in Vietnamese.")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
