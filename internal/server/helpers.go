package server

import (
	"net/http"

	"github.com/rso-sample-apps/rso-web/internal/constants"
	"github.com/rso-sample-apps/rso-web/internal/logging"
)

func authorizationCode(r *http.Request) string {
	return r.URL.Query().Get(constants.QueryParamAuthorizationCode)
}

func accessToken(r *http.Request) string {
	return r.URL.Query().Get(constants.QueryParamAccessToken)
}

func idToken(r *http.Request) string {
	return r.URL.Query().Get(constants.QueryParamIDToken)
}

func sessionKey(r *http.Request) string {
	return r.URL.Query().Get(constants.QueryParamSession)
}

func respondHTML(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.FromRequest(r).WithError(err).Error("failed to write response")
	}
}
