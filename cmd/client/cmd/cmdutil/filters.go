package cmdutil

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"oficina/internal/domain/filter"
)

// FilterFlags - флаги фильтрации списков
type FilterFlags struct {
	Query string
	Month string
	Day   string
}

// Register добавляет --query, --month и --day к команде
func (f *FilterFlags) Register(cmd *cobra.Command, queryHint string) {
	cmd.Flags().StringVarP(&f.Query, "query", "q", "", queryHint)
	cmd.Flags().StringVarP(&f.Month, "month", "m", "", "mês: 1-12, nome do mês ou \"all\" (padrão: mês atual)")
	cmd.Flags().StringVarP(&f.Day, "day", "d", "", "dia do mês")
}

// Criteria собирает фильтры. Без --month берется текущий месяц.
func (f *FilterFlags) Criteria(now time.Time) (filter.Criteria, error) {
	crit := filter.DefaultCriteria(now)
	crit.Query = f.Query
	crit.Day = f.Day

	if f.Month != "" {
		month, err := filter.ParseMonth(f.Month)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("--month: %w", err)
		}
		crit.Month = month
	}

	return crit, nil
}
