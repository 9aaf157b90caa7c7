package captcha_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-boutique-backend/pkg/captcha"
)

func newVerifier(endpoint string) *captcha.Verifier {
	return captcha.New(captcha.Config{
		Secret:   "secret-key",
		Endpoint: endpoint,
		Timeout:  2 * time.Second,
	})
}

func TestVerifyPassesTokenSecretAndAddress(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		form = map[string]string{
			"secret":   r.PostFormValue("secret"),
			"response": r.PostFormValue("response"),
			"remoteip": r.PostFormValue("remoteip"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "tok-123", "203.0.113.9")

	assert.NoError(t, err)
	assert.Equal(t, "secret-key", form["secret"])
	assert.Equal(t, "tok-123", form["response"])
	assert.Equal(t, "203.0.113.9", form["remoteip"])
}

func TestVerifyOmitsUnknownAddress(t *testing.T) {
	var hasRemoteIP bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		_, hasRemoteIP = r.PostForm["remoteip"]
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "tok-123", "")

	assert.NoError(t, err)
	assert.False(t, hasRemoteIP)
}

func TestVerifyRejectsProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "whatever", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid-input-response")
}

func TestVerifyRejectsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "tok", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestVerifyRejectsNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	err := newVerifier(srv.URL).Verify(context.Background(), "tok", "")

	assert.Error(t, err)
}

func TestVerifySurfacesNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	err := newVerifier(srv.URL).Verify(context.Background(), "tok", "")

	assert.Error(t, err)
}
