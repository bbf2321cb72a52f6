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
	"encoding/json"
	"fmt"
)

// Error codes carried in the error_code field so callers can branch without
// string matching. Only policy failures get a code; generic lookup and
// parameter failures are distinguished by success alone.
const (
	CodeToolDisabled = "TOOL_DISABLED"
)

// Result is the failure envelope every tool execution error is reported
// through. Success payloads are built with OK and carry tool-specific fields
// alongside success.
type Result struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// OK serializes a success envelope. The supplied fields are flattened next to
// the success flag; a "success" key in fields is ignored.
func OK(fields map[string]interface{}) string {
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["success"] = true

	data, err := json.Marshal(payload)
	if err != nil {
		return Failf("failed to serialize result: %v", err)
	}
	return string(data)
}

// Fail serializes a failure envelope with the given message.
func Fail(msg string) string {
	return marshalResult(Result{Success: false, Error: msg})
}

// Failf serializes a failure envelope with a formatted message.
func Failf(format string, args ...interface{}) string {
	return Fail(fmt.Sprintf(format, args...))
}

// FailCode serializes a failure envelope carrying a stable error code.
func FailCode(msg, code string) string {
	return marshalResult(Result{Success: false, Error: msg, ErrorCode: code})
}

func marshalResult(r Result) string {
	data, err := json.Marshal(r)
	if err != nil {
		// Result contains only plain strings; Marshal cannot fail on it.
		return `{"success":false,"error":"failed to serialize error"}`
	}
	return string(data)
}
