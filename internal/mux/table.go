package mux

import (
	"context"
	"errors"
	"holdem-server/internal/jwt"
	"holdem-server/pkg/table"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"
)

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.store.Tables())
	}
}

type postTablePayload struct {
	Name string `json:"name"`
}

func (m *Mux) postTable() http.HandlerFunc {
	var wordChar = regexp.MustCompile(`\w`)
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if !wordChar.MatchString(pp.Name) || len(pp.Name) < 3 || len(pp.Name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be 3-40 characters"))
			return
		}

		tbl, err := m.store.CreateTable(pp.Name)
		if err != nil {
			writeMaybeUserError(w, err)
			return
		}

		m.logger.WithField("uuid", tbl.UUID).WithField("name", tbl.Name).Info("table created")
		writeJSON(w, http.StatusCreated, tbl)
	}
}

type getTableUUIDResponse struct {
	*table.Table
	Players []*table.Player `json:"players"`
}

func (m *Mux) getTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		writeJSON(w, http.StatusOK, getTableUUIDResponse{
			Table:   tbl,
			Players: tbl.Players(),
		})
	})
}

type postTableUUIDSeatPayload struct {
	Name string `json:"name"`
}

type postTableUUIDSeatResponse struct {
	Player *table.Player `json:"player"`
	Token  string        `json:"token"`
}

func (m *Mux) postTableUUIDSeat() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pp postTableUUIDSeatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		player, err := tbl.Seat(pp.Name)
		if err != nil {
			writeMaybeUserError(w, err)
			return
		}

		token, err := jwt.Sign(player.ID, tbl.UUID)
		if err != nil {
			_ = tbl.Unseat(player.ID)
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, postTableUUIDSeatResponse{
			Player: player,
			Token:  token,
		})
	})
}

func (m *Mux) deleteTableUUIDSeat() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		player := r.Context().Value(ctxPlayerKey).(*table.Player)

		if err := m.pitBoss.Unseat(r.Context(), tbl, player.ID); err != nil {
			writeMaybeUserError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := mux.Vars(r)["uuid"]
		tbl, err := m.store.GetTableByUUID(uuid)
		if err != nil {
			writeMaybeUserError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, tbl)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
