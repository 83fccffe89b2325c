package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/app/client"
	"oficina/internal/domain/filter"
	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func purchaseView() client.View[purchase.Record] {
	items := []purchase.Record{
		{ID: "p1", Product: "Tinta", Description: "Cinza", Amount: decimal.RequireFromString("100.5"),
			Date: time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC), PaymentMethod: "Pix"},
		{ID: "p2", Product: "Oleo", Amount: decimal.NewFromInt(50),
			Date: time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)},
	}
	return client.View[purchase.Record]{
		Name:     "compras",
		Criteria: filter.Criteria{Month: filter.Month(9)},
		Items:    items,
		Summary:  filter.Summary{Count: 2, Total: decimal.RequireFromString("150.5")},
	}
}

func serviceView() client.View[service.Record] {
	items := []service.Record{
		{ID: "s1", Vehicle: "Fusca", Amount: decimal.NewFromInt(200), Date: time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC)},
		{ID: "s2", Vehicle: "Gol", Description: "Freio", Amount: decimal.NewFromInt(80), Paid: true,
			Date: time.Date(2026, 10, 4, 12, 0, 0, 0, time.UTC)},
	}
	return client.View[service.Record]{
		Name:     "servicos",
		Criteria: filter.Criteria{Month: filter.AllMonths, Query: "o"},
		Items:    items,
		Summary: filter.Summary{
			Count:    2,
			Total:    decimal.NewFromInt(280),
			Received: decimal.NewFromInt(80),
			Pending:  decimal.NewFromInt(200),
			HasSplit: true,
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatSimple, "TABLE": FormatTable, "json": FormatJSON, " csv ": FormatCSV} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPrinter_PurchasesSimple(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New(buf, FormatSimple).WithLocation(time.UTC)

	require.NoError(t, p.Purchases(purchaseView()))

	out := buf.String()
	assert.Contains(t, out, "Histórico Financeiro  [Outubro]")
	assert.Contains(t, out, "Total Filtrado: R$ 150.50")
	assert.Contains(t, out, "Tinta  R$ 100.50")
	assert.Contains(t, out, "Sem descrição")
	assert.Contains(t, out, "05/10/2026 | p1")
}

func TestPrinter_PurchasesEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	view := client.View[purchase.Record]{Criteria: filter.Criteria{Month: filter.Month(0), Day: "abc"}, Items: []purchase.Record{}}

	require.NoError(t, New(buf, FormatSimple).Purchases(view))

	assert.Contains(t, buf.String(), "[Janeiro, dia abc]")
	assert.Contains(t, buf.String(), "Total Filtrado: R$ 0.00")
	assert.Contains(t, buf.String(), "Nenhuma compra encontrada.")
}

func TestPrinter_PurchasesCSV(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, New(buf, FormatCSV).Purchases(purchaseView()))

	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"p1", "2026-10-05T12:00:00Z", "Tinta", "Cinza", "100.50", "Pix", ""}, rows[1])
}

func TestPrinter_ServicesTable(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New(buf, FormatTable).WithLocation(time.UTC)

	require.NoError(t, p.Services(serviceView()))

	out := buf.String()
	assert.Contains(t, out, `Fluxo de Caixa  [Todos, busca "o"]`)
	assert.Contains(t, out, "Recebido:  R$ 80.00")
	assert.Contains(t, out, "A Receber: R$ 200.00")
	assert.Contains(t, out, "COBRAR")
	assert.Contains(t, out, "PAGO")
	assert.Contains(t, out, "Sem descrição")
	assert.Contains(t, out, "2 serviço(s). Total: R$ 280.00")
}

func TestPrinter_PurchasesTableShortMonth(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New(buf, FormatTable).WithLocation(time.UTC)

	require.NoError(t, p.Purchases(purchaseView()))

	out := buf.String()
	assert.Contains(t, out, "Histórico Financeiro  [Out]")
	assert.NotContains(t, out, "Outubro")
	assert.Contains(t, out, "2 compra(s). Total Filtrado: R$ 150.50")
}

func TestPrinter_ServicesSimpleToggleAction(t *testing.T) {
	buf := &bytes.Buffer{}
	p := New(buf, FormatSimple).WithLocation(time.UTC)

	require.NoError(t, p.Services(serviceView()))

	out := buf.String()
	assert.Contains(t, out, `Fluxo de Caixa  [Todos, busca "o"]`)
	assert.Contains(t, out, "03/10/2026 | s1\n   toggle: CONFIRMAR RECEBIMENTO")
	assert.Contains(t, out, "04/10/2026 | s2\n   toggle: CANCELAR (ESTORNAR)")
}

func TestFormat_Interactive(t *testing.T) {
	assert.True(t, FormatSimple.Interactive())
	assert.True(t, FormatTable.Interactive())
	assert.False(t, FormatJSON.Interactive())
	assert.False(t, FormatCSV.Interactive())
}

func TestPrinter_Format(t *testing.T) {
	assert.Equal(t, FormatCSV, New(&bytes.Buffer{}, FormatCSV).Format())
	assert.Equal(t, FormatTable, New(&bytes.Buffer{}, FormatTable).Format())
}

func TestPrinter_ServicesJSON(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, New(buf, FormatJSON).Services(serviceView()))

	var got struct {
		Screen  string           `json:"screen"`
		Items   []service.Record `json:"items"`
		Summary struct {
			Received decimal.Decimal `json:"received"`
			Pending  decimal.Decimal `json:"pending"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "servicos", got.Screen)
	assert.Len(t, got.Items, 2)
	assert.True(t, got.Summary.Received.Equal(decimal.NewFromInt(80)))
	assert.True(t, got.Summary.Pending.Equal(decimal.NewFromInt(200)))
}

func TestPrinter_PurchaseDetail(t *testing.T) {
	buf := &bytes.Buffer{}
	rec := purchaseView().Items[1]

	require.NoError(t, New(buf, FormatSimple).WithLocation(time.UTC).PurchaseDetail(rec))

	out := buf.String()
	assert.Contains(t, out, "Detalhes da Compra")
	assert.Contains(t, out, "R$ 50.00")
	assert.Contains(t, out, "10/10/2026 12:00")
	assert.Contains(t, out, "Não informado")
	assert.Contains(t, out, "Nenhuma observação.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "curto", truncate("curto", 10))
	assert.Equal(t, "descri...", truncate("descrição longa", 9))
}
