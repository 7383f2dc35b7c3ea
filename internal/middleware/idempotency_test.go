package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/rishiboppana/stayhub/internal/idempotency"
	"github.com/rishiboppana/stayhub/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
)

func idempotentRouter(t *testing.T, store IdempotencyStore, status int, calls *int) *ginext.Engine {
	r := ginext.New("test")
	r.POST("/bookings",
		func(c *ginext.Context) {
			c.Set(actorKey, domain.Actor{ID: 9, Role: domain.RoleTraveler})
			c.Next()
		},
		Idempotency(store, newTestLogger(t)),
		func(c *ginext.Context) {
			*calls++
			c.JSON(status, ginext.H{"id": 42})
		},
	)
	return r
}

func post(r http.Handler, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_NoKey(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	w := post(idempotentRouter(t, store, http.StatusCreated, &calls), "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_FirstRequestIsStored(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	store.EXPECT().Get(mock.Anything, "9:abc").Return(nil, nil)
	store.EXPECT().Reserve(mock.Anything, "9:abc").Return(true, nil)
	store.EXPECT().Save(mock.Anything, "9:abc", mock.MatchedBy(func(r idempotency.Response) bool {
		return r.Status == http.StatusCreated && string(r.Body) == `{"id":42}` &&
			strings.HasPrefix(r.ContentType, "application/json")
	})).Return(nil)

	w := post(idempotentRouter(t, store, http.StatusCreated, &calls), "abc")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.Empty(t, w.Header().Get(ReplayedHeader))
}

func TestIdempotency_Replay(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	store.EXPECT().Get(mock.Anything, "9:abc").Return(&idempotency.Response{
		Status:      http.StatusCreated,
		ContentType: "application/json; charset=utf-8",
		Body:        []byte(`{"id":42}`),
	}, nil)

	w := post(idempotentRouter(t, store, http.StatusCreated, &calls), "abc")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "true", w.Header().Get(ReplayedHeader))
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
}

func TestIdempotency_InFlight(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	store.EXPECT().Get(mock.Anything, "9:abc").Return(nil, nil)
	store.EXPECT().Reserve(mock.Anything, "9:abc").Return(false, nil)

	w := post(idempotentRouter(t, store, http.StatusCreated, &calls), "abc")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, calls)
}

func TestIdempotency_ServerErrorReleasesKey(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	store.EXPECT().Get(mock.Anything, "9:abc").Return(nil, nil)
	store.EXPECT().Reserve(mock.Anything, "9:abc").Return(true, nil)
	store.EXPECT().Release(mock.Anything, "9:abc").Return(nil)

	w := post(idempotentRouter(t, store, http.StatusServiceUnavailable, &calls), "abc")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_ClientErrorIsStored(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	store.EXPECT().Get(mock.Anything, "9:abc").Return(nil, nil)
	store.EXPECT().Reserve(mock.Anything, "9:abc").Return(true, nil)
	store.EXPECT().Save(mock.Anything, "9:abc", mock.MatchedBy(func(r idempotency.Response) bool {
		return r.Status == http.StatusConflict
	})).Return(nil)

	w := post(idempotentRouter(t, store, http.StatusConflict, &calls), "abc")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestIdempotency_StoreDownFailsOpen(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	store.EXPECT().Get(mock.Anything, "9:abc").Return(nil, errors.New("redis down"))

	w := post(idempotentRouter(t, store, http.StatusCreated, &calls), "abc")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_KeyTooLong(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	calls := 0

	w := post(idempotentRouter(t, store, http.StatusCreated, &calls), strings.Repeat("k", maxKeyLength+1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, calls)
}

func TestIdempotency_PanicReleasesKey(t *testing.T) {
	store := mocks.NewMockIdempotencyStore(t)
	log := newTestLogger(t)

	store.EXPECT().Get(mock.Anything, "9:abc").Return(nil, nil)
	store.EXPECT().Reserve(mock.Anything, "9:abc").Return(true, nil)
	store.EXPECT().Release(mock.Anything, "9:abc").Return(nil)

	r := ginext.New("test")
	r.Use(Recovery(log))
	r.POST("/bookings",
		func(c *ginext.Context) {
			c.Set(actorKey, domain.Actor{ID: 9, Role: domain.RoleTraveler})
			c.Next()
		},
		Idempotency(store, log),
		func(c *ginext.Context) {
			panic("boom")
		},
	)

	w := post(r, "abc")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
