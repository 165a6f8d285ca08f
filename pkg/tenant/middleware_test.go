package tenant

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type validatorStub struct {
	valid bool
	err   error
}

func (v validatorStub) ValidateOrganization(context.Context, string) (bool, error) {
	return v.valid, v.err
}

func setupRouter(v Validator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(v, nil))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, OrganizationID(c)+"|"+OrganizationIDFromContext(c.Request.Context()))
	})
	return r
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		validator  validatorStub
		wantStatus int
		wantBody   string
		wantMsg    string
	}{
		{name: "sem cabeçalho", wantStatus: http.StatusBadRequest, wantMsg: ErrOrganizationNotSpecified.Error()},
		{name: "organização inexistente", header: "org-1", validator: validatorStub{valid: false}, wantStatus: http.StatusForbidden, wantMsg: ErrOrganizationNotFound.Error()},
		{name: "falha na validação", header: "org-1", validator: validatorStub{err: errors.New("timeout")}, wantStatus: http.StatusInternalServerError},
		{name: "organização válida", header: "org-1", validator: validatorStub{valid: true}, wantStatus: http.StatusOK, wantBody: "org-1|org-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.validator)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"message"`)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, w.Body.String(), tt.wantMsg)
			}
		})
	}
}
