package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const movePath = "/board/cards/move"

func setupEcho(rdb redis.Cmdable, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl, zap.NewNop()))
	e.POST(movePath, handler)
	e.GET("/board/columns", handler)
	return e
}

func validHeaders() map[string]string {
	return map[string]string{
		HeaderRequestID: reqA,
		HeaderRequestAt: time.Now().UTC().Format(time.RFC3339),
		HeaderActorID:   actor,
	}
}

func doReq(e *echo.Echo, method, path string, body []byte, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func countingHandler(n *int, code int) echo.HandlerFunc {
	return func(c echo.Context) error {
		*n++
		return c.JSON(code, map[string]any{"call": *n})
	}
}

func TestIdempotency_BypassOnGET(t *testing.T) {
	_, rdb := newMiniRedis(t)
	calls := 0
	e := setupEcho(rdb, time.Minute, countingHandler(&calls, http.StatusOK))

	rec := doReq(e, http.MethodGet, "/board/columns", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_HeaderValidation(t *testing.T) {
	_, rdb := newMiniRedis(t)
	calls := 0
	e := setupEcho(rdb, time.Minute, countingHandler(&calls, http.StatusOK))

	cases := []struct {
		name  string
		apply func(h map[string]string)
	}{
		{"missing request id", func(h map[string]string) { delete(h, HeaderRequestID) }},
		{"invalid request id", func(h map[string]string) { h[HeaderRequestID] = "NOT-VALID" }},
		{"bad request at", func(h map[string]string) { h[HeaderRequestAt] = "not-a-time" }},
		{"skewed request at", func(h map[string]string) {
			h[HeaderRequestAt] = time.Now().UTC().Add(-maxClockSkew - time.Minute).Format(time.RFC3339)
		}},
		{"missing actor", func(h map[string]string) { delete(h, HeaderActorID) }},
		{"invalid actor", func(h map[string]string) { h[HeaderActorID] = "not32hex" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := validHeaders()
			tc.apply(h)
			rec := doReq(e, http.MethodPost, movePath, []byte(`{"card_id":"42"}`), h)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Zero(t, calls, "handler must not run on header failures")
}

func TestIdempotency_UppercaseRequestIDIsNormalized(t *testing.T) {
	_, rdb := newMiniRedis(t)
	calls := 0
	e := setupEcho(rdb, time.Minute, countingHandler(&calls, http.StatusOK))

	h := validHeaders()
	h[HeaderRequestID] = "3F9A6A1B-3D54-4FBE-8B3A-6B3E8D6B2C88"
	rec := doReq(e, http.MethodPost, movePath, []byte(`{}`), h)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotency_ReplayStoredResponse(t *testing.T) {
	_, rdb := newMiniRedis(t)
	calls := 0
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls, http.StatusOK))
	body := []byte(`{"card_id":"42","target_column_id":"7","position":"0"}`)

	rec1 := doReq(e, http.MethodPost, movePath, body, validHeaders())
	require.Equal(t, http.StatusOK, rec1.Code)

	rec2 := doReq(e, http.MethodPost, movePath, body, validHeaders())
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, rec1.Body.String(), rec2.Body.String())
	assert.Equal(t, "true", rec2.Header().Get("X-Idempotent-Replay"))
	assert.Equal(t, 1, calls, "second request must be served from the store")
}

func TestIdempotency_ServerErrorIsNotStored(t *testing.T) {
	_, rdb := newMiniRedis(t)
	calls := 0
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls, http.StatusInternalServerError))
	body := []byte(`{"card_id":"42"}`)

	doReq(e, http.MethodPost, movePath, body, validHeaders())
	rec := doReq(e, http.MethodPost, movePath, body, validHeaders())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_ConflictWhenInProgress(t *testing.T) {
	_, rdb := newMiniRedis(t)
	calls := 0
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls, http.StatusOK))
	body := []byte(`{"x":1}`)

	key := buildKey(http.MethodPost, movePath, actor, reqA)
	ok, err := provisionalSet(context.Background(), rdb, key, idempEntry{
		InProgress: true,
		BodySHA256: bodyHash(body),
		RequestID:  reqA,
		CreatedAt:  nowUTC(),
	})
	require.NoError(t, err)
	require.True(t, ok)

	rec := doReq(e, http.MethodPost, movePath, body, validHeaders())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Zero(t, calls)
}

func TestIdempotency_ConflictWhenBodyDiffers(t *testing.T) {
	_, rdb := newMiniRedis(t)
	calls := 0
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls, http.StatusOK))

	key := buildKey(http.MethodPost, movePath, actor, reqA)
	require.NoError(t, saveFinal(context.Background(), rdb, key, idempEntry{
		Code:       http.StatusOK,
		Body:       []byte(`{"call":1}`),
		BodySHA256: bodyHash([]byte(`{"x":1}`)),
		RequestID:  reqA,
		CreatedAt:  nowUTC(),
	}, 5*time.Minute))

	rec := doReq(e, http.MethodPost, movePath, []byte(`{"x":2}`), validHeaders())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Zero(t, calls)
}

func TestIdempotency_StoreUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()
	calls := 0
	e := setupEcho(rdb, time.Minute, countingHandler(&calls, http.StatusOK))

	rec := doReq(e, http.MethodPost, movePath, []byte(`{}`), validHeaders())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Zero(t, calls)
}
