// Debug tooling. Dumps named profile in response to HTTP request at
//
//	http(s)://<host-name>/<configured-path>/<profile-name>
//
// See godoc for the list of possible profile names: https://golang.org/pkg/runtime/pprof/#Profile

package main

import (
	"fmt"
	"net/http"
	"path"
	"runtime/pprof"

	"github.com/chatwire/chat/server/logs"
	"github.com/gorilla/mux"
)

// servePprof exposes runtime profiles under the given URL path.
func servePprof(router *mux.Router, serveAt string) {
	if serveAt == "" || serveAt == "-" {
		return
	}

	root := path.Clean("/" + serveAt)
	router.HandleFunc(root+"/{profile}", profileHandler).Methods(http.MethodGet)

	logs.Info.Printf("pprof: profiling info exposed at '%s/'", root)
}

func profileHandler(wrt http.ResponseWriter, req *http.Request) {
	wrt.Header().Set("X-Content-Type-Options", "nosniff")
	wrt.Header().Set("Content-Type", "text/plain; charset=utf-8")

	name := mux.Vars(req)["profile"]
	profile := pprof.Lookup(name)
	if profile == nil {
		wrt.Header().Set("X-Go-Pprof", "1")
		wrt.WriteHeader(http.StatusNotFound)
		fmt.Fprintln(wrt, "Unknown profile '"+name+"'")
		return
	}

	profile.WriteTo(wrt, 1)
}
