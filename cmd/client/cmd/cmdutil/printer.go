package cmdutil

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"oficina/cmd/client/cmd/output"
	"oficina/internal/app/client"
)

// NewPrinter создает Printer для stdout. Глобальный --json важнее --format.
func NewPrinter(cmd *cobra.Command, app *client.App, format string) (*output.Printer, error) {
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	if flag := cmd.Flag("json"); flag != nil && flag.Value.String() == "true" {
		f = output.FormatJSON
	}

	return output.New(cmd.OutOrStdout(), f).WithLocation(app.Location()), nil
}

// StdoutIsTerminal - вывод идет в терминал, а не в файл или pipe
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
