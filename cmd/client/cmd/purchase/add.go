package purchase

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"oficina/cmd/client/cmd/cmdutil"
	"oficina/internal/domain/purchase"
)

const (
	savedMessage  = "Compra salva! Use 'oficina purchase list' para ver."
	connectFailed = "Falha ao conectar no servidor."
)

var draft purchase.Draft

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Cadastrar nova compra",
	Long: `Cadastra uma compra. Produto e valor são obrigatórios.

O valor aceita vírgula como separador decimal (150,50).
Campos obrigatórios não informados por flag são perguntados no terminal.`,
	Example: `  oficina purchase add -p "Tinta automotiva" -v 150,50 --payment Pix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.AppFrom(cmd)
		if err != nil {
			return err
		}

		prompter := cmdutil.StdPrompter()
		if err := prompter.Fill(&draft.Product, "Produto"); err != nil {
			return err
		}
		if err := prompter.Fill(&draft.Amount, "Valor (R$)"); err != nil {
			return err
		}

		err = app.CreatePurchase(cmd.Context(), draft)
		switch {
		case errors.Is(err, purchase.ErrValidation):
			return cmdutil.Prompt(purchase.RequiredPrompt, err)
		case err != nil:
			return cmdutil.Prompt(connectFailed, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), savedMessage)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&draft.Product, "product", "p", "", "produto")
	AddCmd.Flags().StringVarP(&draft.Amount, "amount", "v", "", "valor, ex.: 150,50")
	AddCmd.Flags().StringVar(&draft.Description, "description", "", "descrição")
	AddCmd.Flags().StringVar(&draft.PaymentMethod, "payment", "", "forma de pagamento (Pix, Dinheiro, Cartão...)")
	AddCmd.Flags().StringVar(&draft.Note, "note", "", "observação")
}
