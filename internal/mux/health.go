package mux

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Tables  int    `json:"tables"`
	Seated  int    `json:"seated"`
}

// getHealth reports the build and how busy the server is
func (m *Mux) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables := m.store.Tables()

		seated := 0
		for _, tbl := range tables {
			seated += len(tbl.Players())
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "OK",
			Version: m.version,
			Tables:  len(tables),
			Seated:  seated,
		})
	}
}
