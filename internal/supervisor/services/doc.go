// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package services adapts dashboard components to suture's Serve(ctx) model.

  - HTTPServerService wraps *http.Server, translating ListenAndServe and
    Shutdown into a context-aware Serve with a drain timeout.
  - StoreMonitorService pings the analytic store on an interval, exports the
    result as the store_up gauge and logs up/down transitions.

Both implement fmt.Stringer so supervisor events name them.
*/
package services
