package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/service/home"
	"github.com/hugohenrick/food-backoffice/pkg/auth"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

type validatorStub map[string]bool

func (v validatorStub) ValidateOrganization(_ context.Context, id string) (bool, error) {
	return v[id], nil
}

type homeStub struct{ organizationID string }

func (h homeStub) GetMetrics(context.Context) (*home.Metrics, error) {
	return &home.Metrics{Customers: len(h.organizationID)}, nil
}

func newTestRouter(t *testing.T, jwtService *auth.JWTService, rateLimit int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRouter(Options{
		BasePath:   "/api/v1",
		RateLimit:  rateLimit,
		RateWindow: time.Minute,
		Factories: controller.Factories{
			Home: func(organizationID string) controller.HomeService { return homeStub{organizationID} },
		},
		Validator:  validatorStub{"org-1": true},
		JWTService: jwtService,
		Cache:      cache.NewRedisCache(client, nil),
	})
}

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, nil, 0)

	w := get(r, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_OrganizationHeader(t *testing.T) {
	r := newTestRouter(t, nil, 0)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/metrics/home", nil).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/api/v1/metrics/home", map[string]string{tenant.HeaderName: "org-x"}).Code)

	w := get(r, "/api/v1/metrics/home", map[string]string{tenant.HeaderName: "org-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customers":5`)
}

func TestRouter_RequiresToken(t *testing.T) {
	svc, err := auth.NewJWTService("segredo-de-teste", time.Hour)
	require.NoError(t, err)
	r := newTestRouter(t, svc, 0)

	headers := map[string]string{tenant.HeaderName: "org-1"}
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/metrics/home", headers).Code)

	token, err := svc.GenerateToken(auth.User{ID: "u-1", OrganizationID: "org-1", Email: "a@b.com", Role: "admin"})
	require.NoError(t, err)
	headers["Authorization"] = "Bearer " + token
	assert.Equal(t, http.StatusOK, get(r, "/api/v1/metrics/home", headers).Code)
}

func TestRouter_RateLimit(t *testing.T) {
	r := newTestRouter(t, nil, 2)
	headers := map[string]string{tenant.HeaderName: "org-1"}

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/metrics/home", headers).Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/v1/metrics/home", headers).Code)

	w := get(r, "/api/v1/metrics/home", headers)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRouter_PrometheusEndpoint(t *testing.T) {
	r := newTestRouter(t, nil, 0)
	assert.Equal(t, http.StatusOK, get(r, "/metrics", nil).Code)
}
