package service

import (
	"github.com/spf13/cobra"
)

// ServiceCmd - родительская команда для работ и финансового дашборда
var ServiceCmd = &cobra.Command{
	Use:     "service",
	Aliases: []string{"servico", "servicos"},
	Short:   "Serviços e fluxo de caixa",
	Long:    `Cadastro de serviços por veículo, recebido / a receber e confirmação de pagamento.`,
}
