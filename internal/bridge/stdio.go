// Package bridge exposes a tool registry over a line-delimited JSON
// protocol on stdio. Each request line carries an id, a tool name and
// string parameters; each response line carries the id back with the
// tool's result envelope.
package bridge

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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/rizome-dev/stagehand/internal/registry"
	"github.com/rizome-dev/stagehand/internal/utils"
	"github.com/rizome-dev/stagehand/pkg/tool"
)

// Request is one line of input: which tool to run and with what.
type Request struct {
	ID     interface{}       `json:"id"`
	Tool   string            `json:"tool"`
	Params map[string]string `json:"params"`
}

// Response is one line of output. Result is the tool's JSON envelope,
// embedded verbatim. ID echoes the request id and is null when the
// request line could not be parsed.
type Response struct {
	ID     interface{}     `json:"id"`
	Result json.RawMessage `json:"result"`
}

// Server runs tools from a registry against a line-delimited JSON
// stream. Requests are handled one at a time in arrival order.
type Server struct {
	registry *registry.Registry
	reader   *bufio.Reader
	writer   io.Writer
	logger   *log.Logger
}

// NewServer creates a server reading requests from r and writing
// responses to w. Pass os.Stdin and os.Stdout for stdio mode.
func NewServer(reg *registry.Registry, r io.Reader, w io.Writer, logger *log.Logger) *Server {
	if logger == nil {
		logger = utils.InitDefaultLogger()
	}
	return &Server{
		registry: reg,
		reader:   bufio.NewReader(r),
		writer:   w,
		logger:   logger.WithPrefix("bridge"),
	}
}

// Run serves requests until the input closes or the context is
// cancelled. EOF is a clean shutdown and returns nil.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("bridge started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("bridge shutting down", "reason", ctx.Err())
			return ctx.Err()
		default:
			line, err := s.reader.ReadString('\n')
			if err != nil {
				// A final line without a trailing newline still counts.
				if strings.TrimSpace(line) != "" {
					s.handleLine(line)
				}
				if err == io.EOF {
					s.logger.Info("client disconnected")
					return nil
				}
				return fmt.Errorf("failed to read request: %w", err)
			}
			s.handleLine(line)
		}
	}
}

// handleLine parses and dispatches one request line. A line that is
// not valid JSON gets a failure envelope with a null id, so the client
// always sees one response per line sent.
func (s *Server) handleLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.logger.Warn("malformed request line", "error", err)
		s.send(Response{ID: nil, Result: json.RawMessage(tool.Failf("invalid request: %v", err))})
		return
	}

	result := s.registry.Execute(req.Tool, tool.Params(req.Params))
	s.send(Response{ID: req.ID, Result: json.RawMessage(result)})
}

// send writes one response line and flushes it immediately.
func (s *Server) send(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		return
	}

	fmt.Fprintf(s.writer, "%s\n", data)
	if f, ok := s.writer.(*os.File); ok {
		f.Sync()
	}
}
