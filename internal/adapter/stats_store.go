package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "clonex.dev/pkg/clonex/internal/model"
)

// StatsStore persists run statistics next to the produced records.
type StatsStore interface {
	SaveStats(path m.Path, stats any) error
	LoadConvertStats(path m.Path) (m.ConvertStats, error)
}

// YAMLStatsStore writes statistics as YAML documents.
type YAMLStatsStore struct{}

// NewStatsStore returns a YAMLStatsStore.
func NewStatsStore() *YAMLStatsStore {
	return &YAMLStatsStore{}
}

// SaveStats marshals stats to path, creating parent directories as needed.
func (s *YAMLStatsStore) SaveStats(path m.Path, stats any) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), outputDirPerm); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, outputFilePerm); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	return nil
}

// LoadConvertStats reads a sidecar written for a convert run.
func (s *YAMLStatsStore) LoadConvertStats(path m.Path) (m.ConvertStats, error) {
	// #nosec G304 - user supplied stats path
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.ConvertStats{}, err
	}

	var stats m.ConvertStats
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return m.ConvertStats{}, fmt.Errorf("parse stats %s: %w", path, err)
	}

	return stats, nil
}
