/******************************************************************************
 *
 *  Description :
 *
 *  Web server initialization and shutdown.
 *
 *****************************************************************************/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chatwire/chat/server/logs"
	"github.com/chatwire/chat/server/store"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const defaultListen = ":6060"

// newRouter sets up the websocket endpoints, health check, metrics and profiling.
func newRouter(metricsPath, pprofPath string) http.Handler {
	router := mux.NewRouter()

	// Trailing slash is optional.
	ws := router.Methods(http.MethodGet).Subrouter()
	ws.HandleFunc("/ws/user/{id:[0-9]+}", serveWebSocket(directChannel))
	ws.HandleFunc("/ws/user/{id:[0-9]+}/", serveWebSocket(directChannel))
	ws.HandleFunc("/ws/group/{id:[0-9]+}", serveWebSocket(groupChannel))
	ws.HandleFunc("/ws/group/{id:[0-9]+}/", serveWebSocket(groupChannel))
	ws.HandleFunc("/ws/notifications", serveWebSocket(notifyChannel))
	ws.HandleFunc("/ws/notifications/", serveWebSocket(notifyChannel))

	router.HandleFunc("/healthz", serveHealth).Methods(http.MethodGet)

	if metricsPath != "" && metricsPath != "-" && globals.stats != nil {
		router.Handle(metricsPath, globals.stats.handler()).Methods(http.MethodGet)
		logs.Info.Printf("stats: metrics exposed at '%s'", metricsPath)
	}

	servePprof(router, pprofPath)

	router.NotFoundHandler = http.HandlerFunc(serve404)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(logs.Err),
		handlers.PrintRecoveryStack(true),
	)(handlers.CombinedLoggingHandler(logs.Info.Writer(), router))
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	if addr == "" {
		addr = defaultListen
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          logs.Err,
	}
}

// listenAndServe runs the server until ctx is cancelled, then shuts it down gracefully.
func listenAndServe(ctx context.Context, server *http.Server) error {
	httpdone := make(chan error, 1)
	go func() {
		logs.Info.Printf("Listening for client HTTP connections on [%s]", server.Addr)
		httpdone <- server.ListenAndServe()
	}()

	select {
	case err := <-httpdone:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logs.Info.Println("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Hijacked websocket connections are not affected, the session store closes them.
	if err := server.Shutdown(shutdownCtx); err != nil {
		logs.Warn.Println("HTTP server failed to terminate gracefully", err)
		return err
	}
	return nil
}

// serveHealth reports if the server is up, the database is connected and the relay
// is reachable.
func serveHealth(wrt http.ResponseWriter, req *http.Request) {
	wrt.Header().Set("Content-Type", "application/json; charset=utf-8")

	status := http.StatusOK
	result := map[string]any{
		"version":  currentVersion,
		"build":    buildstamp,
		"sessions": 0,
	}
	if globals.sessionStore != nil {
		result["sessions"] = globals.sessionStore.Count()
	}
	if store.Store == nil || !store.Store.IsOpen() {
		status = http.StatusServiceUnavailable
		result["db"] = "down"
	} else {
		result["db"] = store.Store.GetAdapterName()
	}
	// Relay outage degrades cross-node delivery only, local chat keeps working.
	if globals.relay != nil {
		if err := globals.relay.Ping(); err != nil {
			result["relay"] = "down"
		} else {
			result["relay"] = "up"
		}
	}

	wrt.WriteHeader(status)
	json.NewEncoder(wrt).Encode(result)
}

// Custom 404 response.
func serve404(wrt http.ResponseWriter, req *http.Request) {
	wrt.WriteHeader(http.StatusNotFound)
}
