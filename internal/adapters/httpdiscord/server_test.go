package httpdiscord_test

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	discordadapter "github.com/jose-valero/wishlist-bot/internal/adapters/discord"
	"github.com/jose-valero/wishlist-bot/internal/adapters/httpdiscord"
	"github.com/jose-valero/wishlist-bot/internal/app/service"
)

func newServer(t *testing.T) (*httpdiscord.Server, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	// el ping no toca el store, con repos nil alcanza
	h := discordadapter.NewHandler(service.NewWishlistService(nil, nil, nil))
	return httpdiscord.New(pub, h), priv
}

func signedRequest(priv ed25519.PrivateKey, body string) *http.Request {
	ts := "1700000000"
	sig := ed25519.Sign(priv, []byte(ts+body))
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	req.Header.Set("X-Signature-Timestamp", ts)
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	return req
}

func TestPingPongOverHTTP(t *testing.T) {
	srv, priv := newServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, signedRequest(priv, `{"type":1}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Type int `json:"type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Type) // pong
}

func TestBadSignatureRejected(t *testing.T) {
	srv, _ := newServer(t)
	_, otherPriv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, signedRequest(otherPriv, `{"type":1}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bad request signature")
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/interactions", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
