package utils

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
	"io"
	"sync"
)

// Cleanup collects teardown functions for graceful shutdown.
type Cleanup struct {
	mu       sync.Mutex
	cleanups []func()
}

// Register registers a cleanup function to be called on Run.
func (c *Cleanup) Register(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanups = append(c.cleanups, fn)
}

// RegisterCloser registers an io.Closer to be closed on Run.
func (c *Cleanup) RegisterCloser(closer io.Closer) {
	c.Register(func() {
		_ = closer.Close()
	})
}

// Run runs all registered cleanup functions in reverse order (LIFO)
// and clears the list, so a second Run is a no-op.
func (c *Cleanup) Run() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.cleanups) - 1; i >= 0; i-- {
		c.cleanups[i]()
	}
	c.cleanups = nil
}
