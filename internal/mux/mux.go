package mux

import (
	"context"
	"holdem-server/internal/jwt"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/room"
	"holdem-server/pkg/table"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxTableKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	logger  logrus.FieldLogger
	version string
	store   *table.Store
	pitBoss *room.PitBoss

	// store for testing purposes
	seatRouter *gmux.Router
}

// NewMux returns a new HTTP mux
// Every table is played with gameOpts.
func NewMux(logger logrus.FieldLogger, version string, gameOpts texasholdem.Options, tableOpts table.Options) *Mux {
	pitBoss := room.NewPitBoss(logger, gameOpts)
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		logger:  logger,
		version: version,
		store:   table.NewStore(tableOpts),
		pitBoss: pitBoss,
	}

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())
	}

	tr := this.Router.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)
	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodPost).Path("/seat").Handler(this.postTableUUIDSeat())

	// requires a seat token for the table
	// depends on tableMiddleware
	{
		this.seatRouter = tr.NewRoute().Subrouter()
		this.seatRouter.Use(this.seatMiddleware)

		r := this.seatRouter
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())
		r.Methods(http.MethodDelete).Path("/seat").Handler(this.deleteTableUUIDSeat())
	}

	return this
}

// seatMiddleware requires tableMiddleware to execute first
func (m *Mux) seatMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		claims, err := jwt.ValidSeat(token, tbl.UUID)
		if err != nil {
			m.logger.WithError(err).Debug("invalid seat token")
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		player, err := tbl.GetPlayer(claims.PlayerID)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, player)
		w.Header().Set("Holdem-PlayerID", player.ID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
