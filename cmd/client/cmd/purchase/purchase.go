package purchase

import (
	"github.com/spf13/cobra"
)

// PurchaseCmd - родительская команда для покупок мастерской
var PurchaseCmd = &cobra.Command{
	Use:     "purchase",
	Aliases: []string{"compra", "compras"},
	Short:   "Compras da oficina",
	Long:    `Cadastro e histórico de compras (peças, tintas, insumos).`,
}
