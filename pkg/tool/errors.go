package tool

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
)

var (
	// Registry errors
	ErrToolNotFound = errors.New("tool not found")
	ErrToolDisabled = errors.New("tool is disabled")
	ErrNoHandler    = errors.New("tool has no execute function")
	ErrShutdown     = errors.New("registry is shut down")

	// Parameter errors
	ErrParamMissing = errors.New("missing required parameter")
	ErrParamEmpty   = errors.New("parameter value is empty")

	// Property errors
	ErrPropertyNotFound    = errors.New("property not found")
	ErrPropertyUnsupported = errors.New("unsupported property kind")
	ErrObjectNotFound      = errors.New("object not found")
)

// ParamError reports a parameter that failed validation, keeping the
// parameter name addressable for callers that build structured responses.
type ParamError struct {
	Param string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter '%s' invalid: %v", e.Param, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// NewParamError wraps err with the offending parameter name.
func NewParamError(param string, err error) *ParamError {
	return &ParamError{Param: param, Err: err}
}
