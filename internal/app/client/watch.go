package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Focuser - экран, который можно перезагрузить
type Focuser interface {
	Focus(ctx context.Context)
}

// Watch перезагружает экран сразу и затем каждые interval, вызывая render
// после каждой загрузки. Останавливается по отмене ctx или сигналу завершения.
func (a *App) Watch(ctx context.Context, screen Focuser, interval time.Duration, render func()) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.handleSignals(ctx, cancel)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	screen.Focus(ctx)
	render()

	a.log.Debug("Режим наблюдения запущен", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			a.log.Debug("Режим наблюдения остановлен")
			return nil
		case <-ticker.C:
			screen.Focus(ctx)
			if ctx.Err() != nil {
				return nil
			}
			render()
		}
	}
}

func (a *App) handleSignals(ctx context.Context, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		a.log.Info("Получен сигнал завершения", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}
}
