package cli

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

	"github.com/rizome-dev/stagehand/internal/config"
	"github.com/rizome-dev/stagehand/internal/registry"
	"github.com/rizome-dev/stagehand/internal/sandbox"
	"github.com/rizome-dev/stagehand/internal/service"
	"github.com/rizome-dev/stagehand/internal/utils"
)

// runtime bundles everything a command needs to talk to the registry:
// the config store, the service context, the sandbox host and the built
// registry itself.
type runtime struct {
	store    *config.Store
	sctx     *service.Context
	world    *sandbox.World
	assets   *sandbox.AssetIndex
	registry *registry.Registry
	cleanup  utils.Cleanup
}

// configPath resolves the config file location, honoring --config.
func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.DefaultPath()
}

// openRuntime wires the full stack: config store, service context,
// sandbox world (optionally from a scene file), asset index and tool
// registry. The asset database lives next to the config file.
func openRuntime(scenePath string) (*runtime, error) {
	cfgPath, err := configPath()
	if err != nil {
		return nil, err
	}
	if err := utils.EnsureDir(filepath.Dir(cfgPath)); err != nil {
		return nil, err
	}

	store := config.NewStore(cfgPath)
	sctx := service.NewContext(utils.InitDefaultLogger())

	assets, err := sandbox.OpenAssetIndex(filepath.Join(filepath.Dir(cfgPath), "assets.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset index: %w", err)
	}

	var world *sandbox.World
	if scenePath != "" {
		scene, err := sandbox.LoadScene(scenePath)
		if err != nil {
			assets.Close()
			return nil, err
		}
		world, err = scene.Build(assets)
		if err != nil {
			assets.Close()
			return nil, err
		}
	} else {
		world = sandbox.NewWorld("")
	}

	svc, err := sandbox.NewService(sctx, world, assets)
	if err != nil {
		assets.Close()
		return nil, err
	}

	builder := registry.NewBuilder()
	svc.RegisterTools(builder)

	reg, err := builder.Build(store, sctx)
	if err != nil {
		assets.Close()
		return nil, err
	}

	rt := &runtime{
		store:    store,
		sctx:     sctx,
		world:    world,
		assets:   assets,
		registry: reg,
	}
	rt.cleanup.RegisterCloser(assets)
	rt.cleanup.Register(reg.Shutdown)
	return rt, nil
}

// Close shuts the registry down and releases the runtime's resources.
func (rt *runtime) Close() {
	rt.cleanup.Run()
}
