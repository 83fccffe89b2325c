// Package output печатает экраны клиента в выбранном формате.
package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"

	"oficina/internal/app/client"
	"oficina/internal/domain/filter"
	"oficina/internal/domain/money"
	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
)

type Format string

const (
	FormatSimple Format = "simple"
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"

	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Interactive - формат для чтения человеком, экран можно перерисовывать
func (f Format) Interactive() bool {
	return f == FormatSimple || f == FormatTable
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatSimple, nil
	case FormatSimple, FormatTable, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Printer печатает снимки экранов в w
type Printer struct {
	w      io.Writer
	format Format
	loc    *time.Location

	paid    func(a ...interface{}) string
	pending func(a ...interface{}) string
	spent   func(a ...interface{}) string
	bold    func(a ...interface{}) string
}

// New создает Printer. Цвета отключаются глобально через color.NoColor.
func New(w io.Writer, format Format) *Printer {
	return &Printer{
		w:       w,
		format:  format,
		loc:     time.Local,
		paid:    color.New(color.FgGreen, color.Bold).SprintFunc(),
		pending: color.New(color.FgRed, color.Bold).SprintFunc(),
		spent:   color.New(color.FgRed).SprintFunc(),
		bold:    color.New(color.Bold).SprintFunc(),
	}
}

// WithLocation задает часовой пояс для дат
func (p *Printer) WithLocation(loc *time.Location) *Printer {
	if loc != nil {
		p.loc = loc
	}
	return p
}

// Format - итоговый формат вывода
func (p *Printer) Format() Format {
	return p.format
}

// Message печатает строку состояния. В json и csv не печатает ничего.
func (p *Printer) Message(format string, args ...interface{}) {
	if p.format == FormatJSON || p.format == FormatCSV {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Purchases печатает историю покупок и сумму по фильтру
func (p *Printer) Purchases(view client.View[purchase.Record]) error {
	switch p.format {
	case FormatJSON:
		return p.json(view)
	case FormatCSV:
		return p.purchasesCSV(view.Items)
	case FormatTable:
		return p.purchasesTable(view)
	default:
		return p.purchasesSimple(view)
	}
}

// Services печатает дашборд работ: полученное, ожидаемое и список
func (p *Printer) Services(view client.View[service.Record]) error {
	switch p.format {
	case FormatJSON:
		return p.json(view)
	case FormatCSV:
		return p.servicesCSV(view.Items)
	case FormatTable:
		return p.servicesTable(view)
	default:
		return p.servicesSimple(view)
	}
}

// PurchaseDetail печатает все поля одной покупки
func (p *Printer) PurchaseDetail(rec purchase.Record) error {
	if p.format == FormatJSON {
		return p.json(rec)
	}

	fmt.Fprintf(p.w, "%s\n\n", p.bold("Detalhes da Compra"))
	fmt.Fprintf(p.w, "Produto:            %s\n", rec.Product)
	fmt.Fprintf(p.w, "Valor:              %s\n", p.spent(money.Format(rec.Amount)))
	fmt.Fprintf(p.w, "Data:               %s\n", p.date(rec.Date, dateTimeLayout))
	fmt.Fprintf(p.w, "Forma de Pagamento: %s\n", orDefault(rec.PaymentMethod, "Não informado"))
	fmt.Fprintf(p.w, "Descrição:          %s\n", orDefault(rec.Description, "-"))
	fmt.Fprintf(p.w, "Observações:        %s\n", orDefault(rec.Note, "Nenhuma observação."))
	fmt.Fprintf(p.w, "ID:                 %s\n", rec.ID)
	return nil
}

func (p *Printer) json(v interface{}) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (p *Printer) header(title string, crit filter.Criteria) {
	fmt.Fprintf(p.w, "%s  [%s]\n", p.bold(title), describeCriteria(crit, filter.Month.Label))
}

// в таблицах месяц сокращается
func (p *Printer) tableHeader(title string, crit filter.Criteria) {
	fmt.Fprintf(p.w, "%s  [%s]\n", p.bold(title), describeCriteria(crit, filter.Month.Short))
}

func (p *Printer) purchasesSimple(view client.View[purchase.Record]) error {
	p.header("Histórico Financeiro", view.Criteria)
	fmt.Fprintf(p.w, "Total Filtrado: %s\n\n", p.spent(money.Format(view.Summary.Total)))

	if len(view.Items) == 0 {
		fmt.Fprintln(p.w, "Nenhuma compra encontrada.")
		return nil
	}

	for _, rec := range view.Items {
		fmt.Fprintf(p.w, "%s  %s\n", p.bold(rec.Product), money.Format(rec.Amount))
		fmt.Fprintf(p.w, "   %s\n", truncate(orDefault(rec.Description, "Sem descrição"), 60))
		fmt.Fprintf(p.w, "   %s | %s\n\n", p.date(rec.Date, dateLayout), rec.ID)
	}
	return nil
}

func (p *Printer) purchasesTable(view client.View[purchase.Record]) error {
	p.tableHeader("Histórico Financeiro", view.Criteria)

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DATA\tPRODUTO\tDESCRIÇÃO\tPAGAMENTO\tVALOR\tID\t\n")
	for _, rec := range view.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.date(rec.Date, dateLayout),
			truncate(rec.Product, 30),
			truncate(rec.Description, 30),
			rec.PaymentMethod,
			money.Fixed(rec.Amount),
			rec.ID,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(p.w, "\n%d compra(s). Total Filtrado: %s\n", view.Summary.Count, p.spent(money.Format(view.Summary.Total)))
	return nil
}

func (p *Printer) purchasesCSV(items []purchase.Record) error {
	w := csv.NewWriter(p.w)
	if err := w.Write([]string{"id", "data", "produto", "descricao", "valor", "formaPagamento", "observacao"}); err != nil {
		return err
	}
	for _, rec := range items {
		row := []string{
			rec.ID,
			rec.Date.UTC().Format(time.RFC3339),
			rec.Product,
			rec.Description,
			money.Fixed(rec.Amount),
			rec.PaymentMethod,
			rec.Note,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (p *Printer) dashboard(view client.View[service.Record]) {
	if p.format == FormatTable {
		p.tableHeader("Fluxo de Caixa", view.Criteria)
	} else {
		p.header("Fluxo de Caixa", view.Criteria)
	}
	fmt.Fprintf(p.w, "Recebido:  %s\n", p.paid(money.Format(view.Summary.Received)))
	fmt.Fprintf(p.w, "A Receber: %s\n\n", p.pending(money.Format(view.Summary.Pending)))
}

func (p *Printer) status(rec service.Record) string {
	if rec.Paid {
		return p.paid(rec.Status())
	}
	return p.pending(rec.Status())
}

func (p *Printer) servicesSimple(view client.View[service.Record]) error {
	p.dashboard(view)

	if len(view.Items) == 0 {
		fmt.Fprintln(p.w, "Nenhum registro encontrado.")
		return nil
	}

	for _, rec := range view.Items {
		fmt.Fprintf(p.w, "%s  %s  %s\n", p.bold(rec.Vehicle), money.Format(rec.Amount), p.status(rec))
		fmt.Fprintf(p.w, "   %s\n", truncate(rec.DisplayDescription(), 60))
		fmt.Fprintf(p.w, "   %s | %s\n", p.date(rec.Date, dateLayout), rec.ID)
		fmt.Fprintf(p.w, "   toggle: %s\n\n", rec.ToggleAction())
	}
	return nil
}

func (p *Printer) servicesTable(view client.View[service.Record]) error {
	p.dashboard(view)

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DATA\tVEÍCULO\tDESCRIÇÃO\tVALOR\tSTATUS\tID\t\n")
	for _, rec := range view.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.date(rec.Date, dateLayout),
			truncate(rec.Vehicle, 25),
			truncate(rec.DisplayDescription(), 30),
			money.Fixed(rec.Amount),
			rec.Status(),
			rec.ID,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(p.w, "\n%d serviço(s). Total: %s\n", view.Summary.Count, money.Format(view.Summary.Total))
	return nil
}

func (p *Printer) servicesCSV(items []service.Record) error {
	w := csv.NewWriter(p.w)
	if err := w.Write([]string{"id", "data", "veiculo", "descricao", "valor", "pago"}); err != nil {
		return err
	}
	for _, rec := range items {
		row := []string{
			rec.ID,
			rec.Date.UTC().Format(time.RFC3339),
			rec.Vehicle,
			rec.Description,
			money.Fixed(rec.Amount),
			fmt.Sprintf("%t", rec.Paid),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (p *Printer) date(t time.Time, layout string) string {
	return t.In(p.loc).Format(layout)
}

func describeCriteria(crit filter.Criteria, month func(filter.Month) string) string {
	parts := []string{month(crit.Month)}
	if strings.TrimSpace(crit.Day) != "" && crit.Month != filter.AllMonths {
		parts = append(parts, "dia "+strings.TrimSpace(crit.Day))
	}
	if crit.Query != "" {
		parts = append(parts, fmt.Sprintf("busca %q", crit.Query))
	}
	return strings.Join(parts, ", ")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	return string(runes[:length-3]) + "..."
}
