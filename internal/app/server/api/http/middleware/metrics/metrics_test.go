package metrics

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type toggleInput struct {
	ID string `path:"id"`
}

func TestMiddleware_CountsByOperationPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "toggle",
		Method:      http.MethodPatch,
		Path:        "/servicos/{id}/toggle",
		Middlewares: huma.Middlewares{m.Middleware()},
	}, func(ctx context.Context, in *toggleInput) (*struct{}, error) {
		if in.ID == "missing" {
			return nil, huma.Error404NotFound("service not found")
		}
		return nil, nil
	})

	api.Patch("/servicos/a/toggle")
	api.Patch("/servicos/b/toggle")
	api.Patch("/servicos/missing/toggle")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPatch, "/servicos/{id}/toggle", "204")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPatch, "/servicos/{id}/toggle", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}
