package service

import (
	"github.com/spf13/cobra"

	"oficina/cmd/client/cmd/cmdutil"
)

const updateFailed = "Falha ao atualizar."

var (
	toggleFilters cmdutil.FilterFlags
	toggleFormat  string
)

var ToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Confirmar recebimento ou estornar",
	Long: `Inverte o pagamento do serviço no servidor e mostra o fluxo de caixa atualizado.

Serviço a receber passa para pago (CONFIRMAR RECEBIMENTO),
serviço pago volta para a receber (CANCELAR / ESTORNAR).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.AppFrom(cmd)
		if err != nil {
			return err
		}

		printer, err := cmdutil.NewPrinter(cmd, app, toggleFormat)
		if err != nil {
			return err
		}

		if err := applyFilters(app, &toggleFilters); err != nil {
			return err
		}

		id := args[0]
		if err := app.TogglePayment(cmd.Context(), id); err != nil {
			return cmdutil.Prompt(updateFailed, err)
		}

		if rec, err := app.FindService(id); err == nil {
			printer.Message("%s: %s", rec.Vehicle, rec.Status())
		}

		return printer.Services(app.Services.Snapshot())
	},
}

func init() {
	toggleFilters.Register(ToggleCmd, "buscar por veículo")
	ToggleCmd.Flags().StringVarP(&toggleFormat, "format", "f", "simple", "formato de saída (simple, table, json, csv)")
}

