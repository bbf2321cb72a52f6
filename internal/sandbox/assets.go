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
	"database/sql"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rizome-dev/stagehand/pkg/host"
)

const createAssetsTable = `
CREATE TABLE IF NOT EXISTS assets (
	path TEXT PRIMARY KEY,
	folder TEXT NOT NULL,
	name TEXT NOT NULL,
	class TEXT NOT NULL,
	saved_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assets_folder ON assets(folder);
`

// AssetIndex is the sandbox's SQLite-backed asset catalog. Use
// ":memory:" as the path in tests.
type AssetIndex struct {
	db *sql.DB
}

// OpenAssetIndex opens or creates the index at the given file path.
func OpenAssetIndex(dbPath string) (*AssetIndex, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("asset index path is required")
	}
	dsn := dbPath
	if dbPath != ":memory:" {
		dsn = dbPath + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open asset index: %w", err)
	}
	if dbPath == ":memory:" {
		// Every pooled connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping asset index: %w", err)
	}
	if _, err := db.Exec(createAssetsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create assets table: %w", err)
	}
	return &AssetIndex{db: db}, nil
}

// Close closes the SQLite handle.
func (a *AssetIndex) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Find looks up a single asset by its full path.
func (a *AssetIndex) Find(assetPath string) (host.Asset, error) {
	row := a.db.QueryRow(
		`SELECT path, folder, name, class, saved_at FROM assets WHERE path = ?`,
		assetPath,
	)

	var asset host.Asset
	var savedAt int64
	err := row.Scan(&asset.Path, &asset.Folder, &asset.Name, &asset.Class, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return host.Asset{}, fmt.Errorf("asset '%s' not found", assetPath)
	}
	if err != nil {
		return host.Asset{}, fmt.Errorf("find asset: %w", err)
	}
	asset.SavedAt = fromMillis(savedAt)
	return asset, nil
}

// List returns the assets under a folder, all assets when folder is
// empty.
func (a *AssetIndex) List(folder string) ([]host.Asset, error) {
	query := `SELECT path, folder, name, class, saved_at FROM assets ORDER BY path`
	args := []interface{}{}
	if folder != "" {
		query = `SELECT path, folder, name, class, saved_at FROM assets WHERE folder = ? ORDER BY path`
		args = append(args, folder)
	}

	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []host.Asset
	for rows.Next() {
		var asset host.Asset
		var savedAt int64
		if err := rows.Scan(&asset.Path, &asset.Folder, &asset.Name, &asset.Class, &savedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		asset.SavedAt = fromMillis(savedAt)
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// Save inserts or replaces an asset record. Folder and name derive from
// the path when unset; SavedAt defaults to now.
func (a *AssetIndex) Save(asset host.Asset) error {
	asset.Path = strings.TrimSpace(asset.Path)
	if asset.Path == "" {
		return fmt.Errorf("asset path is required")
	}
	if asset.Folder == "" {
		asset.Folder = path.Dir(asset.Path)
	}
	if asset.Name == "" {
		asset.Name = path.Base(asset.Path)
	}
	if asset.SavedAt.IsZero() {
		asset.SavedAt = time.Now()
	}

	_, err := a.db.Exec(
		`INSERT OR REPLACE INTO assets (path, folder, name, class, saved_at) VALUES (?, ?, ?, ?, ?)`,
		asset.Path, asset.Folder, asset.Name, asset.Class, toMillis(asset.SavedAt),
	)
	if err != nil {
		return fmt.Errorf("save asset: %w", err)
	}
	return nil
}

// Delete removes an asset record by path.
func (a *AssetIndex) Delete(assetPath string) error {
	res, err := a.db.Exec(`DELETE FROM assets WHERE path = ?`, assetPath)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("asset '%s' not found", assetPath)
	}
	return nil
}
