// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origins (rs/cors) and answers preflight requests.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context, logs access info
//     and records HTTP metrics.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers under /debug/pprof/.
package controller
