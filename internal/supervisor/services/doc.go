// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services adapts Marquee components to suture.Service.

  - HTTPServerService turns http.Server's ListenAndServe/Shutdown pair into
    a context-driven Serve with a bounded drain period.
  - IndexService runs MongoDB index creation until it succeeds once, then
    removes itself from the tree with suture.ErrDoNotRestart.

Every service implements fmt.Stringer so supervisor log events carry a
readable name.
*/
package services
