package service

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"oficina/cmd/client/cmd/cmdutil"
	"oficina/internal/domain/service"
)

const (
	sentMessage = "Serviço enviado para o Financeiro!"
	saveFailed  = "Não foi possível salvar."
)

var draft service.Draft

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Cadastrar novo serviço",
	Long: `Cadastra um serviço ainda não pago. Veículo e valor são obrigatórios.

O valor aceita vírgula como separador decimal (1200,00).`,
	Example: `  oficina service add --vehicle "Fusca ABC-1234" --amount 200 --description "Troca de óleo"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cmdutil.AppFrom(cmd)
		if err != nil {
			return err
		}

		prompter := cmdutil.StdPrompter()
		if err := prompter.Fill(&draft.Vehicle, "Veículo (modelo / placa)"); err != nil {
			return err
		}
		if err := prompter.Fill(&draft.Amount, "Valor (R$)"); err != nil {
			return err
		}

		err = app.CreateService(cmd.Context(), draft)
		switch {
		case errors.Is(err, service.ErrValidation):
			return cmdutil.Prompt(service.RequiredPrompt, err)
		case err != nil:
			return cmdutil.Prompt(saveFailed, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), sentMessage)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&draft.Vehicle, "vehicle", "", "veículo (modelo / placa)")
	AddCmd.Flags().StringVarP(&draft.Amount, "amount", "v", "", "valor, ex.: 1200,00")
	AddCmd.Flags().StringVar(&draft.Description, "description", "", "descrição do serviço")
}
