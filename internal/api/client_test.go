package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tikang-admin/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token(ctx context.Context) string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := zerolog.Nop()
	client := NewClient(config.APIConfig{
		BaseURL:        server.URL,
		AdminBaseURL:   server.URL + "/admin",
		RequestTimeout: 5 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}, staticToken("tok-xyz"), &logger)
	return client, server
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"bookings":[]}`))
	}))

	_, err := client.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoTokenNoAuthHeader(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"token":"fresh"}`))
	}))
	defer server.Close()

	logger := zerolog.Nop()
	client := NewClient(config.APIConfig{
		BaseURL:        server.URL,
		AdminBaseURL:   server.URL,
		RequestTimeout: 5 * time.Second,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}, staticToken(""), &logger)

	token, err := client.Login(context.Background(), "admin@tikang.example", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.False(t, hasAuth)
}

func TestLoginWithoutTokenInResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := client.Login(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
}

func TestServerErrorFieldSurfaced(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Payment already accepted"}`))
	}))

	err := client.AcceptPayment(context.Background(), 42)
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Payment already accepted", apiErr.Error())
}

func TestServerMessageFieldSurfaced(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"User already blocked"}`))
	}))

	err := client.BlockUser(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "User already blocked", err.Error())
}

func TestGenericFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	}))

	err := client.DeleteUser(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "request failed (http 500)", err.Error())
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&APIError{StatusCode: http.StatusUnauthorized}))
	assert.True(t, IsAuthError(&APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsAuthError(&APIError{StatusCode: http.StatusBadRequest}))
	assert.False(t, IsAuthError(assert.AnError))
}

func TestTransportErrorWrapped(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClient(config.APIConfig{
		BaseURL:        "http://127.0.0.1:1",
		AdminBaseURL:   "http://127.0.0.1:1",
		RequestTimeout: 100 * time.Millisecond,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}, staticToken("x"), &logger)

	_, err := client.ListBookings(context.Background())
	require.Error(t, err)
	_, isAPIErr := err.(*APIError)
	assert.False(t, isAPIErr, "transport failures are not APIErrors")
	assert.Contains(t, err.Error(), "api request failed")
}

func TestMultipartUpload(t *testing.T) {
	var gotContentType, gotUserID string
	var gotFileNames []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotUserID = r.FormValue("user_id")
		for field := range r.MultipartForm.File {
			gotFileNames = append(gotFileNames, field)
		}
		w.WriteHeader(http.StatusOK)
	}))

	qr := FilePart{FileName: "qr.png", ContentType: "image/png", Data: []byte("png-bytes")}
	require.NoError(t, client.ChangeGCashQR(context.Background(), qr, 5))

	assert.Contains(t, gotContentType, "multipart/form-data; boundary=")
	assert.Equal(t, "5", gotUserID)
	assert.Equal(t, []string{"gcash_qr"}, gotFileNames)
}

func TestChangeBannersPartialSlots(t *testing.T) {
	var fields []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field := range r.MultipartForm.File {
			fields = append(fields, field)
		}
		w.WriteHeader(http.StatusOK)
	}))

	banners := map[int]FilePart{
		2: {FileName: "b2.png", ContentType: "image/png", Data: []byte("x")},
		5: {FileName: "b5.png", ContentType: "image/png", Data: []byte("y")},
	}
	require.NoError(t, client.ChangeBanners(context.Background(), banners))
	assert.ElementsMatch(t, []string{"banner2", "banner5"}, fields)
}

func TestRedisCacheAndInvalidation(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	var hits int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			hits++
			w.Write([]byte(`{"bookings":[{"booking_id":1}]}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	client.UseRedisCache(redis.NewClient(&redis.Options{Addr: s.Addr()}), time.Minute)

	ctx := context.Background()
	_, err = client.ListBookings(ctx)
	require.NoError(t, err)
	_, err = client.ListBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "second read should come from cache")

	// A mutation invalidates the cache; the next read goes to the server.
	require.NoError(t, client.AcceptPayment(ctx, 1))
	_, err = client.ListBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestUploadURL(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClient(config.APIConfig{
		BaseURL:        "https://api.tikang.example",
		AdminBaseURL:   "https://admin.tikang.example",
		RequestTimeout: time.Second,
		RateLimitRPS:   1,
		RateLimitBurst: 1,
	}, staticToken(""), &logger)

	assert.Equal(t, "https://api.tikang.example/uploads/profile/p.jpg", client.UploadURL("profile", "p.jpg"))
	assert.Equal(t, PlaceholderImage, client.UploadURL("profile", ""))
	assert.Equal(t, PlaceholderImage, client.UploadURL("logo", "   "))
}
