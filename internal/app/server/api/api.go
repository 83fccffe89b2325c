// Сервер для разработки, повторяющий API записей мастерской:
//
//GET   /health                # Проверка доступности
//GET   /compras               # Полный список покупок
//POST  /compras               # Создать покупку
//GET   /servicos              # Полный список работ
//POST  /servicos              # Создать работу (pago=false)
//PATCH /servicos/{id}/toggle  # Переключить оплату

package api

import (
	healthAPI "oficina/internal/app/server/api/http/health"
	"oficina/internal/app/server/api/http/middleware"
	"oficina/internal/app/server/api/http/middleware/logger"
	"oficina/internal/app/server/api/http/middleware/metrics"
	purchaseAPI "oficina/internal/app/server/api/http/purchase"
	serviceAPI "oficina/internal/app/server/api/http/service"
	"oficina/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Purchase *purchaseAPI.Handler
	Service  *serviceAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(store storage.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Oficina API", "1.0.0")
	API := humachi.New(mux, config)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	h := handlers(store, log, metrics.New(reg))
	h.Health.SetupRoutes(API)
	h.Purchase.SetupRoutes(API)
	h.Service.SetupRoutes(API)

	return mux
}

func handlers(store storage.Storage, log *slog.Logger, metricsMW *metrics.Metrics) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metricsMW.Middleware())
	purchaseHandler := purchaseAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(metricsMW.Middleware())
	serviceHandler := serviceAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Purchase: purchaseHandler,
		Service:  serviceHandler,
	}
}
