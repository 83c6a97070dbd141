package server

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octofork/pkg/domain/interfaces"
	"github.com/m-mizutani/octofork/pkg/domain/types"
)

func handleLogin(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirect, err := uc.Login(r.Context())
		if err != nil {
			writeError(w, r, "fail to build login URL", err)
			return
		}
		writeJSON(w, http.StatusOK, redirect)
	}
}

func handleLogout(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, uc.Logout(r.Context()))
	}
}

func handleCallback(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if errMsg := q.Get("error"); errMsg != "" {
			writeError(w, r, "authorization was denied",
				goerr.Wrap(types.ErrOAuthExchange, "authorization was denied", goerr.V("error", errMsg)))
			return
		}

		code := q.Get("code")
		if code == "" {
			writeError(w, r, "code is required", goerr.Wrap(types.ErrValidationFailed, "code is required"))
			return
		}

		token, err := uc.GetAccessToken(r.Context(), code, q.Get("state"))
		if err != nil {
			writeError(w, r, "fail to exchange OAuth code", err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, token)
	}
}
