package server

import (
	"net/http"
	"net/url"

	"github.com/rso-sample-apps/rso-web/internal/config"
	"github.com/rso-sample-apps/rso-web/internal/constants"
	"github.com/rso-sample-apps/rso-web/internal/htmlview"
	"github.com/rso-sample-apps/rso-web/internal/logging"
	"github.com/rso-sample-apps/rso-web/internal/riot"
	"github.com/rso-sample-apps/rso-web/internal/rso"
	"github.com/rso-sample-apps/rso-web/internal/store"
)

func newAPI(conf *config.Config, rsoClient *rso.Client, riotClient *riot.Client,
	handoff store.Store) http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc(constants.PathLogin, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != constants.PathLogin {
			http.NotFound(w, r)
			return
		}
		respondHTML(w, r, http.StatusOK, htmlview.LoginPage(rsoClient.SignInURL()))
	})

	mux.HandleFunc(conf.App.CallbackPath, func(w http.ResponseWriter, r *http.Request) {
		l := logging.FromRequest(r)

		// The code is not validated locally. A missing or bogus code
		// surfaces as whatever the token endpoint answers, and the
		// browser is routed to the display page either way so the
		// failure shows up there.
		body, err := rsoClient.Exchange(r.Context(), authorizationCode(r))
		if err != nil {
			l.WithError(err).Error("failed to exchange authorization code for tokens")
			respondHTML(w, r, http.StatusOK, htmlview.RedirectPage(""))
			return
		}

		query := rso.HandoffQuery(body)

		if conf.App.SessionHandoff && query != "" {
			key, err := handoff.Put(body)
			if err != nil {
				l.WithError(err).Error("failed to store token set for handoff")
				respondHTML(w, r, http.StatusOK, htmlview.RedirectPage(""))
				return
			}
			query = url.Values{constants.QueryParamSession: {key}}.Encode()
		}

		respondHTML(w, r, http.StatusOK, htmlview.RedirectPage(query))
	})

	mux.HandleFunc(constants.PathShowData, func(w http.ResponseWriter, r *http.Request) {
		l := logging.FromRequest(r)

		token := accessToken(r)
		idTok := idToken(r)
		if key := sessionKey(r); conf.App.SessionHandoff && key != "" {
			payload, ok := handoff.Get(key)
			if !ok {
				http.Error(w, "Session expired", http.StatusBadRequest)
				return
			}
			token = rso.TokenField(payload, constants.QueryParamAccessToken)
			idTok = rso.TokenField(payload, constants.QueryParamIDToken)
		}

		account, err := riotClient.AccountData(r.Context(), token)
		if err != nil {
			l.WithError(err).Error("failed to fetch account data")
			http.Error(w, "Failed to fetch account data", http.StatusBadGateway)
			return
		}

		rotations, err := riotClient.ChampionRotations(r.Context())
		if err != nil {
			l.WithError(err).Error("failed to fetch champion rotation data")
			http.Error(w, "Failed to fetch champion rotation data", http.StatusBadGateway)
			return
		}

		var claims []byte
		if idTok != "" {
			claims, err = rso.IDTokenClaims(idTok)
			if err != nil {
				l.WithError(err).Warn("failed to parse id_token claims")
				claims = nil
			}
		}

		respondHTML(w, r, http.StatusOK, htmlview.DataPage(account, rotations, claims))
	})

	return mux
}
