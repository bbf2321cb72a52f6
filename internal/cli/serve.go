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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rizome-dev/stagehand/internal/bridge"
	"github.com/spf13/cobra"
)

// ServeCmd creates the serve command
func ServeCmd() *cobra.Command {
	var scenePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool registry over stdio",
		Long: `Starts the line-delimited JSON bridge on stdin/stdout. Each request
line names a tool and its parameters; each response line carries the
tool's JSON result envelope back with the request id.

Load a scene file with --scene to prepare the sandbox world and asset
index before serving.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(scenePath)
			if err != nil {
				return err
			}
			defer rt.Close()

			// Setup signal handling
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigChan
				cancel()
			}()

			server := bridge.NewServer(rt.registry, os.Stdin, os.Stdout, rt.sctx.Logger())
			if err := server.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "Scene file to load before serving")

	return cmd
}
