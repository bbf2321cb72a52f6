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
	"time"

	json "github.com/goccy/go-json"

	"github.com/rizome-dev/stagehand/internal/property"
	"github.com/rizome-dev/stagehand/internal/registry"
	"github.com/rizome-dev/stagehand/internal/service"
	"github.com/rizome-dev/stagehand/pkg/host"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// Service exposes the sandbox world and asset index as tools, standing
// in for the domain services a real host would register on top of the
// dispatch layer. Generic host access goes through the service context;
// only sandbox-specific mutation (spawn/remove) touches the concrete
// world.
type Service struct {
	service.Base
	world  *World
	assets *AssetIndex
}

// NewService registers the sandbox service and attaches its world and
// asset index to the shared context.
func NewService(sctx *service.Context, world *World, assets *AssetIndex) (*Service, error) {
	s := &Service{
		Base:   service.NewBase("sandbox", sctx),
		world:  world,
		assets: assets,
	}
	if err := sctx.RegisterService("sandbox", s); err != nil {
		return nil, err
	}
	sctx.SetWorld(world)
	sctx.SetAssets(assets)
	sctx.SetObjects(world)
	return s, nil
}

// RegisterTools queues the sandbox tool set on a registry builder.
func (s *Service) RegisterTools(b *registry.Builder) {
	b.Register(tool.Tool{
		Name:        "spawn_object",
		Description: "Add an object to the sandbox world",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "path", Description: "Canonical object path", Type: "string", Required: true},
			{Name: "class", Description: "Object class name", Type: "string", Required: true},
		},
	}, s.spawnObject)

	b.Register(tool.Tool{
		Name:        "remove_object",
		Description: "Remove an object from the sandbox world",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "path", Description: "Canonical object path", Type: "string", Required: true},
		},
	}, s.removeObject)

	b.Register(tool.Tool{
		Name:        "list_objects",
		Description: "List objects in the active world",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "class", Description: "Only list objects of this class", Type: "string", Required: false},
		},
	}, s.listObjects)

	b.Register(tool.Tool{
		Name:        "set_property",
		Description: "Set a property on an object, converting the value to the property's kind",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "path", Description: "Canonical object path", Type: "string", Required: true},
			{Name: "property", Description: "Property name", Type: "string", Required: true},
			{Name: "value", Description: "Literal scalar, JSON fragment, or property text", Type: "string", Required: true},
		},
	}, s.setProperty)

	b.Register(tool.Tool{
		Name:        "get_property",
		Description: "Read a property from an object as JSON",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "path", Description: "Canonical object path", Type: "string", Required: true},
			{Name: "property", Description: "Property name", Type: "string", Required: true},
		},
	}, s.getProperty)

	b.Register(tool.Tool{
		Name:        "find_asset",
		Description: "Look up an asset by path",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "path", Description: "Asset path", Type: "string", Required: true},
		},
	}, s.findAsset)

	b.Register(tool.Tool{
		Name:        "list_assets",
		Description: "List assets, optionally under a folder",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "folder", Description: "Folder path to list", Type: "string", Required: false},
		},
	}, s.listAssets)

	b.Register(tool.Tool{
		Name:        "save_asset",
		Description: "Insert or replace an asset index entry",
		Category:    "Sandbox",
		Parameters: []tool.Param{
			{Name: "path", Description: "Asset path", Type: "string", Required: true},
			{Name: "class", Description: "Asset class name", Type: "string", Required: false},
		},
	}, s.saveAsset)
}

func (s *Service) spawnObject(_ *service.Context, params tool.Params) (string, error) {
	path := params.Get("path")
	if err := s.ValidateString(path, "path"); err != nil {
		return "", err
	}
	class := params.Get("class")
	if err := s.ValidateString(class, "class"); err != nil {
		return "", err
	}

	obj, err := s.world.Spawn(path, class)
	if err != nil {
		return "", err
	}
	s.LogInfo("object spawned", "path", path, "class", class)

	return tool.OK(map[string]interface{}{
		"path":  obj.Path(),
		"class": obj.Class(),
		"name":  obj.Name(),
	}), nil
}

func (s *Service) removeObject(_ *service.Context, params tool.Params) (string, error) {
	path := params.Get("path")
	if err := s.ValidateString(path, "path"); err != nil {
		return "", err
	}

	if err := s.world.Remove(path); err != nil {
		return "", err
	}
	s.LogInfo("object removed", "path", path)

	return tool.OK(map[string]interface{}{"path": path, "removed": true}), nil
}

func (s *Service) listObjects(sctx *service.Context, params tool.Params) (string, error) {
	world := sctx.World()
	if world == nil {
		return "", fmt.Errorf("no world attached")
	}
	class := params.Get("class")

	entries := make([]interface{}, 0)
	for _, obj := range world.Objects() {
		if class != "" && obj.Class() != class {
			continue
		}
		entries = append(entries, map[string]interface{}{
			"path":       obj.Path(),
			"class":      obj.Class(),
			"properties": obj.PropertyNames(),
		})
	}

	return tool.OK(map[string]interface{}{
		"world":   world.Name(),
		"objects": entries,
		"count":   len(entries),
	}), nil
}

func (s *Service) setProperty(sctx *service.Context, params tool.Params) (string, error) {
	path := params.Get("path")
	if err := s.ValidateString(path, "path"); err != nil {
		return "", err
	}
	name := params.Get("property")
	if err := s.ValidateString(name, "property"); err != nil {
		return "", err
	}

	resolver := sctx.Objects()
	if resolver == nil {
		return "", fmt.Errorf("no object resolver attached")
	}
	obj, err := resolver.Resolve(path)
	if err != nil {
		return "", err
	}

	marshaller := property.NewMarshaller(resolver)
	if err := marshaller.SetProperty(obj, name, params.Get("value")); err != nil {
		return "", err
	}
	s.LogInfo("property set", "path", path, "property", name)

	raw, err := marshaller.PropertyJSON(obj, name)
	if err != nil {
		return "", err
	}
	return tool.OK(map[string]interface{}{
		"path":     path,
		"property": name,
		"value":    json.RawMessage(raw),
	}), nil
}

func (s *Service) getProperty(sctx *service.Context, params tool.Params) (string, error) {
	path := params.Get("path")
	if err := s.ValidateString(path, "path"); err != nil {
		return "", err
	}
	name := params.Get("property")
	if err := s.ValidateString(name, "property"); err != nil {
		return "", err
	}

	resolver := sctx.Objects()
	if resolver == nil {
		return "", fmt.Errorf("no object resolver attached")
	}
	obj, err := resolver.Resolve(path)
	if err != nil {
		return "", err
	}

	raw, err := property.NewMarshaller(resolver).PropertyJSON(obj, name)
	if err != nil {
		return "", err
	}
	return tool.OK(map[string]interface{}{
		"path":     path,
		"property": name,
		"value":    json.RawMessage(raw),
	}), nil
}

func (s *Service) findAsset(sctx *service.Context, params tool.Params) (string, error) {
	path := params.Get("path")
	if err := s.ValidateString(path, "path"); err != nil {
		return "", err
	}

	index := sctx.Assets()
	if index == nil {
		return "", fmt.Errorf("no asset index attached")
	}
	asset, err := index.Find(path)
	if err != nil {
		return "", err
	}

	return tool.OK(assetFields(asset)), nil
}

func (s *Service) listAssets(sctx *service.Context, params tool.Params) (string, error) {
	index := sctx.Assets()
	if index == nil {
		return "", fmt.Errorf("no asset index attached")
	}
	assets, err := index.List(params.Get("folder"))
	if err != nil {
		return "", err
	}

	entries := make([]interface{}, 0, len(assets))
	for _, asset := range assets {
		entries = append(entries, assetFields(asset))
	}
	return tool.OK(map[string]interface{}{
		"assets": entries,
		"count":  len(entries),
	}), nil
}

func (s *Service) saveAsset(sctx *service.Context, params tool.Params) (string, error) {
	path := params.Get("path")
	if err := s.ValidateString(path, "path"); err != nil {
		return "", err
	}

	index := sctx.Assets()
	if index == nil {
		return "", fmt.Errorf("no asset index attached")
	}
	asset := host.Asset{Path: path, Class: params.Get("class")}
	if err := index.Save(asset); err != nil {
		return "", err
	}
	s.LogInfo("asset saved", "path", path)

	saved, err := index.Find(path)
	if err != nil {
		return "", err
	}
	return tool.OK(assetFields(saved)), nil
}

func assetFields(asset host.Asset) map[string]interface{} {
	return map[string]interface{}{
		"path":     asset.Path,
		"folder":   asset.Folder,
		"name":     asset.Name,
		"class":    asset.Class,
		"saved_at": asset.SavedAt.Format(time.RFC3339),
	}
}
