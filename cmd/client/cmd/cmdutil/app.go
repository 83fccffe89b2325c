// Package cmdutil содержит общие для команд клиента помощники:
// доступ к приложению из контекста, флаги фильтров и ввод полей формы.
package cmdutil

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"oficina/internal/app/client"
)

type appKey struct{}

var ErrNoApp = errors.New("приложение не инициализировано")

// WithApp кладет приложение в контекст команды
func WithApp(ctx context.Context, app *client.App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// AppFrom достает приложение, положенное корневой командой
func AppFrom(cmd *cobra.Command) (*client.App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, ErrNoApp
	}

	app, ok := ctx.Value(appKey{}).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
