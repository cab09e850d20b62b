package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *newrelic.Application {
	t.Helper()
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("loanhub-test"),
		newrelic.ConfigLicense("0000000000000000000000000000000000000000"),
		newrelic.ConfigEnabled(false),
	)
	require.NoError(t, err)
	return app
}

func TestSegmentsWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	assert.ErrorIs(t, WithSegment(ctx, "loans.apply", func() error { return boom }), boom)
	assert.NoError(t, WithDatastoreSegment(ctx, "loans", "INSERT", func() error { return nil }))
	assert.ErrorIs(t, WithExternalSegment(ctx, "smtp", "send", "smtp://localhost", func() error { return boom }), boom)

	v, err := WithSegmentAndReturn(ctx, "users.get", func() (int, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestSegmentsWithTransaction(t *testing.T) {
	txn := testApp(t).StartTransaction("test")
	defer txn.End()
	ctx := newrelic.NewContext(context.Background(), txn)

	calls := 0
	fn := func() error { calls++; return nil }

	require.NoError(t, WithSegment(ctx, "a", fn))
	require.NoError(t, WithDatastoreSegment(ctx, "loans", "SELECT", fn))
	require.NoError(t, WithExternalSegment(ctx, "nsq", "publish", "nsq://localhost:4150", fn))
	assert.Equal(t, 3, calls)
}

func TestInitNewRelic_Disabled(t *testing.T) {
	assert.Nil(t, InitNewRelic(&models.Config{}))
}

func TestMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(nil))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
