// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package app

import (
	"encoding/json"
	"net/http"

	"github.com/Ahmed-yasser-cpp/MyCSE211Project/segsink"
	"github.com/Ahmed-yasser-cpp/MyCSE211Project/tickclock"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type clockState struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// newRouter exposes the counter and a PNG snapshot of the display. The
// reset route does exactly what holding S1 does.
func newRouter(counter *tickclock.Counter, sink *segsink.Sink) *mux.Router {
	router := mux.NewRouter().StrictSlash(false)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/clock", func(w http.ResponseWriter, r *http.Request) {
		seconds, minutes := counter.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clockState{Minutes: minutes, Seconds: seconds}); err != nil {
			logrus.Warningf("encoding clock state: %v", err)
		}
	}).Methods(http.MethodGet)
	apiRouter.HandleFunc("/clock/reset", func(w http.ResponseWriter, r *http.Request) {
		counter.Reset()
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodPost)

	router.Handle("/display.png", sink).Methods(http.MethodGet)

	return router
}
