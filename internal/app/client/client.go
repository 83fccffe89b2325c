package client

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"oficina/internal/app/client/config"
	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
)

const (
	PurchasesScreen = "compras"
	ServicesScreen  = "servicos"
)

// App связывает API записей с экранами покупок и работ
type App struct {
	config    *config.Config
	log       *slog.Logger
	api       RecordsAPI
	Purchases *Screen[purchase.Record]
	Services  *Screen[service.Record]
}

// New создает приложение с HTTP клиентом к API из конфигурации
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return NewWithAPI(cfg, log, httpCl, time.Now), nil
}

// NewWithAPI создает приложение поверх произвольной реализации API
func NewWithAPI(cfg *config.Config, log *slog.Logger, api RecordsAPI, now func() time.Time) *App {
	loc := cfg.Location()

	return &App{
		config:    cfg,
		log:       log,
		api:       api,
		Purchases: NewScreen(PurchasesScreen, purchase.FilterConfig(loc), api.ListPurchases, log, now),
		Services:  NewScreen(ServicesScreen, service.FilterConfig(loc), api.ListServices, log, now),
	}
}

// CreatePurchase проверяет форму и отправляет новую покупку.
// Локальные списки не меняются: новая запись появится при следующем Focus.
func (a *App) CreatePurchase(ctx context.Context, draft purchase.Draft) error {
	req, err := purchase.NewCreateRequest(draft)
	if err != nil {
		return err
	}

	if err := a.api.CreatePurchase(ctx, req); err != nil {
		a.log.Error("Не удалось сохранить покупку", "error", err)
		return fmt.Errorf("ошибка создания покупки: %w", err)
	}

	a.log.Info("Покупка сохранена", "produto", req.Product, "valor", req.Amount)
	return nil
}

// CreateService проверяет форму и отправляет новую работу
func (a *App) CreateService(ctx context.Context, draft service.Draft) error {
	req, err := service.NewCreateRequest(draft)
	if err != nil {
		return err
	}

	if err := a.api.CreateService(ctx, req); err != nil {
		a.log.Error("Не удалось сохранить работу", "error", err)
		return fmt.Errorf("ошибка создания работы: %w", err)
	}

	a.log.Info("Работа сохранена", "veiculo", req.Vehicle, "valor", req.Amount)
	return nil
}

// TogglePayment переключает оплату работы на сервере и перезагружает экран работ.
// При ошибке экран не меняется.
func (a *App) TogglePayment(ctx context.Context, id string) error {
	updated, err := a.api.ToggleService(ctx, id)
	if err != nil {
		a.log.Error("Не удалось переключить оплату", "error", err, "id", id)
		return fmt.Errorf("ошибка переключения оплаты: %w", err)
	}

	if updated != nil {
		a.log.Info("Оплата переключена", "id", id, "pago", updated.Paid)
	}

	a.Services.Focus(ctx)
	return nil
}

// FindService ищет работу в последнем загруженном списке
func (a *App) FindService(id string) (service.Record, error) {
	rec, ok := a.Services.Find(func(r service.Record) bool { return r.ID == id })
	if !ok {
		return service.Record{}, fmt.Errorf("%w: %s", ErrNotLoaded, id)
	}
	return rec, nil
}

// FindPurchase ищет покупку в последнем загруженном списке
func (a *App) FindPurchase(id string) (purchase.Record, error) {
	rec, ok := a.Purchases.Find(func(r purchase.Record) bool { return r.ID == id })
	if !ok {
		return purchase.Record{}, fmt.Errorf("%w: %s", ErrNotLoaded, id)
	}
	return rec, nil
}

// Location - часовой пояс для фильтров и отображения дат
func (a *App) Location() *time.Location {
	return a.config.Location()
}

// WatchInterval - период обновления из конфигурации
func (a *App) WatchInterval() time.Duration {
	return a.config.Interval()
}
