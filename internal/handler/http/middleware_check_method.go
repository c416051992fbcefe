// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A known path requested with a method it does not serve is answered with
// 404 Not Found instead of chi's default 405, so callers cannot probe which
// session endpoints exist. Patterns are compared to the raw request path;
// parameterised segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		routes := router.Routes()
		idx := slices.IndexFunc(routes, func(route chi.Route) bool {
			return route.Pattern == r.URL.Path
		})

		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if _, ok := routes[idx].Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
