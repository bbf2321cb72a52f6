package host

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

import "time"

// Asset is one entry in the host's asset index.
type Asset struct {
	Path    string    `json:"path"`
	Folder  string    `json:"folder"`
	Name    string    `json:"name"`
	Class   string    `json:"class"`
	SavedAt time.Time `json:"saved_at"`
}

// AssetIndex is the host's asset catalog, addressed by canonical path.
type AssetIndex interface {
	// Find looks up a single asset by its full path.
	Find(path string) (Asset, error)

	// List returns the assets under a folder path.
	List(folder string) ([]Asset, error)

	// Save inserts or replaces an asset record.
	Save(asset Asset) error

	// Delete removes an asset record by path.
	Delete(path string) error
}
