package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantthrive/grantctl/internal/ui/form"
)

func loginServer(t *testing.T) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if body["password"] != "hunter2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-1","user":{"email":"` + body["email"] + `","full_name":"Ana Lee"}}}`))
		case "/auth/logout":
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestLoginPasswordStdin(t *testing.T) {
	origStdin := stdin
	defer func() { stdin = origStdin }()
	stdin = strings.NewReader("hunter2\n")

	ctx, cfg := testEnv(t, loginServer(t))

	var err error
	out := captureOutput(func() {
		err = Login(ctx, LoginOptions{Email: "ana@council.gov.au", PasswordStdin: true})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ana Lee (ana@council.gov.au)")

	data, err := os.ReadFile(cfg.TokenFile)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", strings.TrimSpace(string(data)))

	out = captureOutput(func() { err = Logout(ctx) })
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")
	_, err = os.Stat(cfg.TokenFile)
	assert.True(t, os.IsNotExist(err))
}

func TestLoginPrompt(t *testing.T) {
	stubInteractive(t, true)
	origPrompt := promptLogin
	defer func() { promptLogin = origPrompt }()

	var gotDefault string
	promptLogin = func(_ context.Context, email string) (form.Credentials, error) {
		gotDefault = email
		return form.Credentials{Email: "ana@council.gov.au", Password: "wrong"}, nil
	}

	ctx, _ := testEnv(t, loginServer(t))
	err := Login(ctx, LoginOptions{Email: "default@council.gov.au"})
	assert.Error(t, err)
	assert.Equal(t, "default@council.gov.au", gotDefault)
}

func TestLoginRequiresTerminalOrStdin(t *testing.T) {
	stubInteractive(t, false)
	ctx, _ := testEnv(t, loginServer(t))

	err := Login(ctx, LoginOptions{})
	assert.ErrorIs(t, err, ErrNotInteractive)

	err = Login(ctx, LoginOptions{PasswordStdin: true})
	assert.ErrorContains(t, err, "--email is required")
}
