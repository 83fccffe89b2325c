package purchase

import (
	"time"

	"github.com/spf13/cobra"

	"oficina/cmd/client/cmd/cmdutil"
)

var (
	listFilters cmdutil.FilterFlags
	listFormat  string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Histórico de compras",
	Long: `Mostra as compras filtradas e o total gasto.

Por padrão mostra o mês atual. A busca procura no produto e na descrição.
Com --month all os filtros de ano e dia são ignorados.`,
	Example: `  oficina purchase list
  oficina purchase list -q tinta -m all
  oficina purchase list -m 3 -d 15 -f table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.AppFrom(cmd)
		if err != nil {
			return err
		}

		printer, err := cmdutil.NewPrinter(cmd, app, listFormat)
		if err != nil {
			return err
		}

		crit, err := listFilters.Criteria(time.Now().In(app.Location()))
		if err != nil {
			return err
		}
		if err := app.Purchases.SetCriteria(crit); err != nil {
			return err
		}

		app.Purchases.Focus(cmd.Context())

		return printer.Purchases(app.Purchases.Snapshot())
	},
}

func init() {
	listFilters.Register(ListCmd, "buscar por produto ou descrição")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "formato de saída (simple, table, json, csv)")
}
