// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor runs CineMatch's long-lived services under suture v4.

The tree has two layers below the root:

	cinematch
	├── api-layer
	│   └── http-server
	└── maintenance-layer
	    ├── cache-cleanup   (when the response cache is enabled)
	    └── config-watch    (when a config file is in use)

A failing service is restarted with backoff. Failures in the maintenance
layer count against that layer only, so the HTTP server keeps serving
while a watcher crash-loops.

suture events are logged through sutureslog; pass the slog bridge from
the logging package so they land in the same zerolog output:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg.Supervisor))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
