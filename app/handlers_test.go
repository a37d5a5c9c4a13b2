package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-beanfactory/app"
	"github.com/km-arc/go-beanfactory/framework/container"
	"github.com/km-arc/go-beanfactory/framework/providers"
	"github.com/km-arc/go-beanfactory/framework/routing"
)

func bootRouter(t *testing.T, ps ...container.ServiceProvider) *routing.Router {
	t.Helper()
	ctx := testCtx(t)

	f := container.New()
	t.Cleanup(f.Stop)
	reg := container.NewProviderRegistry(f)
	base := []container.ServiceProvider{
		&providers.LoggingServiceProvider{Logger: zap.NewNop()},
		&providers.RoutingServiceProvider{},
	}
	for _, p := range append(base, ps...) {
		require.NoError(t, reg.Register(p))
	}
	require.NoError(t, reg.Boot(ctx))

	r, ok := container.GetBean[*routing.Router](ctx, f)
	require.True(t, ok)
	return r
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var m map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&m))
	return rr.Code, m
}

func TestHandlers_ConfigRoundTrip(t *testing.T) {
	t.Parallel()
	r := bootRouter(t, &app.Provider{})

	code, body := call(t, r, http.MethodGet, "/api/v1/config/theme", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No value for key theme.", body["message"])

	code, body = call(t, r, http.MethodPut, "/api/v1/config/theme", `{"value":"dark"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"key": "theme", "value": "dark"}, body["data"])

	code, body = call(t, r, http.MethodGet, "/api/v1/config/theme", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"key": "theme", "value": "dark"}, body["data"])
}

func TestHandlers_PutRejectsBadBodies(t *testing.T) {
	t.Parallel()
	r := bootRouter(t, &app.Provider{})

	code, body := call(t, r, http.MethodPut, "/api/v1/config/theme", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body["errors"], "value")

	code, _ = call(t, r, http.MethodPut, "/api/v1/config/theme", `{"value":`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHandlers_ListBeans(t *testing.T) {
	t.Parallel()
	r := bootRouter(t, &app.Provider{})

	code, body := call(t, r, http.MethodGet, "/api/v1/beans", "")
	require.Equal(t, http.StatusOK, code)
	assert.ElementsMatch(t, []any{
		container.TypeKey[app.ConfigService](),
		container.TypeKey[app.ConfigApi](),
		container.TypeKey[zap.Logger](),
		container.TypeKey[routing.Router](),
	}, body["data"])
}

// onlyApi registers the api without its service.
type onlyApi struct{ app.Provider }

func (p *onlyApi) Register(f *container.Factory) error {
	f.Register(container.InjectActorFromDefault[app.ConfigApi]())
	return nil
}

func TestHandlers_MissingServiceIsUnavailable(t *testing.T) {
	t.Parallel()
	r := bootRouter(t, &onlyApi{})

	code, _ := call(t, r, http.MethodGet, "/api/v1/config/theme", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestHandlers_MissingApiIsUnavailable(t *testing.T) {
	t.Parallel()

	r := routing.New(nil)
	app.NewHandlers(container.New(), nil).Routes(r)

	code, body := call(t, r, http.MethodPut, "/api/v1/config/theme", `{"value":"dark"}`)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, app.ErrConfigServiceMissing.Error(), body["message"])
}

func TestProvider_BootWithoutRouter(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	f := container.New()
	t.Cleanup(f.Stop)
	reg := container.NewProviderRegistry(f)
	require.NoError(t, reg.Register(&app.Provider{}))
	assert.ErrorIs(t, reg.Boot(ctx), app.ErrRouterMissing)
}
