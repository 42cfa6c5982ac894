package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/auditkraft/auditkraft/internal/domain"
)

const fileName = ".auditkraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .auditkraft.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .auditkraft.yaml from workspacePath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(workspacePath string) (domain.EngineConfig, error) {
	data, err := os.ReadFile(filepath.Join(workspacePath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.EngineConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
