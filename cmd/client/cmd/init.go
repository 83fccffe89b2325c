// cmd/client/cmd/init.go
package cmd

import (
	"oficina/cmd/client/cmd/purchase"
	"oficina/cmd/client/cmd/service"
)

func init() {
	// Команды покупок
	rootCmd.AddCommand(purchase.PurchaseCmd)
	purchase.PurchaseCmd.AddCommand(purchase.AddCmd)
	purchase.PurchaseCmd.AddCommand(purchase.ListCmd)
	purchase.PurchaseCmd.AddCommand(purchase.ShowCmd)

	// Команды работ и дашборда
	rootCmd.AddCommand(service.ServiceCmd)
	service.ServiceCmd.AddCommand(service.AddCmd)
	service.ServiceCmd.AddCommand(service.ListCmd)
	service.ServiceCmd.AddCommand(service.ToggleCmd)
}
