// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-waitroom/internal/utils"
	"github.com/MKhiriev/go-waitroom/models"
)

// routableMethods are the methods checked when building an Allow header.
var routableMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with an Allow header listing every method the router would route for
// the request path, URL parameters included, or 404 when none would.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			utils.WriteFailure(w, r, http.StatusNotFound, models.CodeNotFound, "route not found")
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteFailure(w, r, http.StatusMethodNotAllowed, models.CodeMethodNotAllowed,
			r.Method+" is not allowed on "+r.URL.Path)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range routableMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
