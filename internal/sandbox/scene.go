package sandbox

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
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rizome-dev/stagehand/internal/property"
	"github.com/rizome-dev/stagehand/internal/utils"
	"github.com/rizome-dev/stagehand/pkg/host"
)

// SceneConfig is a YAML scene fixture: the objects and assets a
// sandbox world starts with.
type SceneConfig struct {
	Name    string         `yaml:"name"`
	Objects []ObjectConfig `yaml:"objects"`
	Assets  []AssetConfig  `yaml:"assets,omitempty"`
}

// ObjectConfig describes one object in a scene fixture.
type ObjectConfig struct {
	Path       string           `yaml:"path"`
	Class      string           `yaml:"class"`
	Properties []PropertyConfig `yaml:"properties,omitempty"`
}

// PropertyConfig declares a property and optionally its starting value.
// The value passes through the property marshaller, so it accepts every
// shape the coercion engine does.
type PropertyConfig struct {
	Name  string      `yaml:"name"`
	Kind  string      `yaml:"kind"`
	Value interface{} `yaml:"value,omitempty"`
}

// AssetConfig describes one asset index entry in a scene fixture.
type AssetConfig struct {
	Path  string `yaml:"path"`
	Class string `yaml:"class"`
}

// LoadScene reads a scene fixture from a YAML file. A missing name
// falls back to the filename without extension.
func LoadScene(path string) (*SceneConfig, error) {
	data, err := utils.SafeReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var config SceneConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if config.Name == "" {
		base := filepath.Base(path)
		config.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &config, nil
}

// SaveScene writes a scene fixture to a YAML file.
func SaveScene(path string, config *SceneConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}
	if err := utils.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

// Build constructs a world from the fixture and seeds the asset index
// when one is given. Property values are written through the property
// marshaller, matching how external callers would set them.
func (c *SceneConfig) Build(assets *AssetIndex) (*World, error) {
	world := NewWorld(c.Name)
	marshaller := property.NewMarshaller(world)

	for _, objCfg := range c.Objects {
		obj, err := world.Spawn(objCfg.Path, objCfg.Class)
		if err != nil {
			return nil, fmt.Errorf("scene object '%s': %w", objCfg.Path, err)
		}
		for _, propCfg := range objCfg.Properties {
			kind, err := ParseKind(propCfg.Kind)
			if err != nil {
				return nil, fmt.Errorf("scene object '%s' property '%s': %w", objCfg.Path, propCfg.Name, err)
			}
			obj.DeclareProperty(propCfg.Name, kind, nil)
			if propCfg.Value == nil {
				continue
			}
			if err := marshaller.SetProperty(obj, propCfg.Name, propCfg.Value); err != nil {
				return nil, fmt.Errorf("scene object '%s': %w", objCfg.Path, err)
			}
		}
	}

	if assets != nil {
		for _, assetCfg := range c.Assets {
			if err := assets.Save(host.Asset{Path: assetCfg.Path, Class: assetCfg.Class}); err != nil {
				return nil, fmt.Errorf("scene asset '%s': %w", assetCfg.Path, err)
			}
		}
	}

	return world, nil
}

// ParseKind maps a fixture kind word to a property kind.
func ParseKind(kind string) (host.PropertyKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "string":
		return host.KindString, nil
	case "int":
		return host.KindInt, nil
	case "float":
		return host.KindFloat, nil
	case "bool":
		return host.KindBool, nil
	case "object":
		return host.KindObject, nil
	case "array":
		return host.KindArray, nil
	case "struct":
		return host.KindStruct, nil
	}
	return host.KindUnknown, fmt.Errorf("unknown property kind '%s'", kind)
}
