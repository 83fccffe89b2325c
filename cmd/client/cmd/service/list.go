package service

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"oficina/cmd/client/cmd/cmdutil"
	"oficina/internal/app/client"
)

const clearScreen = "\033[H\033[2J"

var (
	listFilters cmdutil.FilterFlags
	listFormat  string
	watch       bool
	interval    time.Duration
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Fluxo de caixa dos serviços",
	Long: `Mostra o recebido, o a receber e a lista de serviços filtrada.

Por padrão mostra o mês atual. A busca procura apenas no veículo.
Com --watch a lista é recarregada periodicamente até Ctrl+C.`,
	Example: `  oficina service list
  oficina service list -q gol -m all -f table
  oficina service list --watch --interval 15s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.AppFrom(cmd)
		if err != nil {
			return err
		}

		printer, err := cmdutil.NewPrinter(cmd, app, listFormat)
		if err != nil {
			return err
		}

		if err := applyFilters(app, &listFilters); err != nil {
			return err
		}

		if !watch {
			app.Services.Focus(cmd.Context())
			return printer.Services(app.Services.Snapshot())
		}

		every := interval
		if every <= 0 {
			every = app.WatchInterval()
		}
		redraw := cmdutil.StdoutIsTerminal() && printer.Format().Interactive()

		return app.Watch(cmd.Context(), app.Services, every, func() {
			if redraw {
				fmt.Fprint(cmd.OutOrStdout(), clearScreen)
			}
			if err := printer.Services(app.Services.Snapshot()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Erro: %v\n", err)
			}
		})
	},
}

func applyFilters(app *client.App, flags *cmdutil.FilterFlags) error {
	crit, err := flags.Criteria(time.Now().In(app.Location()))
	if err != nil {
		return err
	}
	return app.Services.SetCriteria(crit)
}

func init() {
	listFilters.Register(ListCmd, "buscar por veículo")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "formato de saída (simple, table, json, csv)")
	ListCmd.Flags().BoolVarP(&watch, "watch", "w", false, "recarregar periodicamente")
	ListCmd.Flags().DurationVar(&interval, "interval", 0, "período do --watch (padrão: WATCH_INTERVAL_SECONDS)")
}
