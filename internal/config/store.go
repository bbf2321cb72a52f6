package config

// Copyright (C) 2025 Rizome Labs, Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rizome-dev/stagehand/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DisabledToolsKey is the config key holding the comma-separated names
// of disabled tools. This key is the sole source of truth for which
// tools stay enabled across host restarts.
const DisabledToolsKey = "tools.disabled"

// Store is the explicit configuration handle the registry persists
// through. It owns its own viper instance so tests and embedders can
// point it anywhere instead of sharing process-global state.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// DefaultPath returns the standard config location,
// $HOME/.stagehand/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".stagehand", "config.yaml"), nil
}

// NewStore creates a store bound to a config file path. The file is not
// read until Load.
func NewStore(path string) *Store {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return &Store{v: v, path: path}
}

// Load reads the config file into the cache. A missing file is not an
// error: it means nothing has been disabled yet.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// DisabledTools returns the persisted disabled-tool names.
func (s *Store) DisabledTools() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := strings.TrimSpace(s.v.GetString(DisabledToolsKey))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// SetDisabledTools persists a new disabled set. The in-memory cache and
// the file are updated together so they cannot diverge.
func (s *Store) SetDisabledTools(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(DisabledToolsKey, strings.Join(names, ","))

	data, err := yaml.Marshal(s.v.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := utils.WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
