package purchase

import (
	"fmt"

	"github.com/spf13/cobra"

	"oficina/cmd/client/cmd/cmdutil"
)

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Detalhes de uma compra",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.AppFrom(cmd)
		if err != nil {
			return err
		}

		printer, err := cmdutil.NewPrinter(cmd, app, "simple")
		if err != nil {
			return err
		}

		app.Purchases.Focus(cmd.Context())

		rec, err := app.FindPurchase(args[0])
		if err != nil {
			return cmdutil.Prompt(fmt.Sprintf("Compra não encontrada: %s", args[0]), err)
		}

		return printer.PurchaseDetail(rec)
	},
}
