package cmdutil

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/cmd/client/cmd/output"
	"oficina/internal/app/client"
	"oficina/internal/app/client/config"
	"oficina/internal/utils/logger"
	"oficina/internal/domain/filter"
)

func TestAppFrom(t *testing.T) {
	cmd := &cobra.Command{}

	_, err := AppFrom(cmd)
	assert.ErrorIs(t, err, ErrNoApp)

	app := &client.App{}
	cmd.SetContext(WithApp(context.Background(), app))

	got, err := AppFrom(cmd)
	require.NoError(t, err)
	assert.Same(t, app, got)
}

func TestFilterFlags_Criteria(t *testing.T) {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		flags   FilterFlags
		want    filter.Criteria
		wantErr bool
	}{
		{
			name:  "Defaults",
			flags: FilterFlags{},
			want:  filter.Criteria{Month: filter.Month(9)},
		},
		{
			name:  "All",
			flags: FilterFlags{Query: "gol", Month: "all", Day: "5"},
			want:  filter.Criteria{Query: "gol", Month: filter.AllMonths, Day: "5"},
		},
		{
			name:  "Numeric",
			flags: FilterFlags{Month: "3"},
			want:  filter.Criteria{Month: filter.Month(2)},
		},
		{
			name:    "Invalid",
			flags:   FilterFlags{Month: "13"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.flags.Criteria(now)
			if tt.wantErr {
				assert.ErrorIs(t, err, filter.ErrInvalidMonth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterFlags_Register(t *testing.T) {
	var f FilterFlags
	cmd := &cobra.Command{Use: "list", RunE: func(*cobra.Command, []string) error { return nil }}
	f.Register(cmd, "busca")

	cmd.SetArgs([]string{"-q", "tinta", "-m", "janeiro", "-d", "7"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, FilterFlags{Query: "tinta", Month: "janeiro", Day: "7"}, f)
}

func TestPrompter_Fill(t *testing.T) {
	t.Run("Interactive", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := NewPrompter(strings.NewReader("Oleo\n  12,50 \n"), out, true)

		var product, amount string
		require.NoError(t, p.Fill(&product, "Produto"))
		require.NoError(t, p.Fill(&amount, "Valor"))

		assert.Equal(t, "Oleo", product)
		assert.Equal(t, "12,50", amount)
		assert.Equal(t, "Produto: Valor: ", out.String())
	})

	t.Run("KeepsGivenValue", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := NewPrompter(strings.NewReader("ignored\n"), out, true)

		product := "Tinta"
		require.NoError(t, p.Fill(&product, "Produto"))

		assert.Equal(t, "Tinta", product)
		assert.Empty(t, out.String())
	})

	t.Run("NonInteractive", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("Oleo\n"), &bytes.Buffer{}, false)

		var product string
		require.NoError(t, p.Fill(&product, "Produto"))

		assert.Empty(t, product)
	})

	t.Run("EOFWithoutNewline", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("Gol"), &bytes.Buffer{}, true)

		var vehicle string
		require.NoError(t, p.Fill(&vehicle, "Veículo"))

		assert.Equal(t, "Gol", vehicle)
	})
}

func TestNewPrinter_JSONFlagOverridesFormat(t *testing.T) {
	app, err := client.New(&config.Config{APIURL: "http://localhost:1", HTTPTimeout: 1}, logger.NewDiscard())
	require.NoError(t, err)

	tests := []struct {
		name   string
		args   []string
		format string
		want   output.Format
	}{
		{name: "format flag", format: "table", want: output.FormatTable},
		{name: "global json", args: []string{"--json"}, format: "table", want: output.FormatJSON},
		{name: "global json over csv", args: []string{"--json"}, format: "csv", want: output.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *output.Printer
			root := &cobra.Command{Use: "root"}
			root.PersistentFlags().Bool("json", false, "")
			child := &cobra.Command{
				Use: "list",
				RunE: func(cmd *cobra.Command, _ []string) error {
					var err error
					got, err = NewPrinter(cmd, app, tt.format)
					return err
				},
			}
			root.AddCommand(child)
			root.SetArgs(append(tt.args, "list"))
			root.SetOut(&bytes.Buffer{})

			require.NoError(t, root.Execute())
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format())
			assert.Equal(t, tt.want != output.FormatJSON && tt.want != output.FormatCSV, got.Format().Interactive())
		})
	}

	_, err = NewPrinter(&cobra.Command{}, app, "xml")
	assert.ErrorIs(t, err, output.ErrUnknownFormat)
}
