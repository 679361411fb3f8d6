// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor runs Marquee's long-lived services under a suture v4
supervisor tree.

# Layout

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── IndexService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff. Each layer counts failures on
its own, so an index build that keeps failing while MongoDB is unreachable
does not restart the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewIndexService(db.Movies(), 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

Supervisor events (start, failure, backoff) are logged through sutureslog
to the slog logger passed to NewSupervisorTree.
*/
package supervisor
