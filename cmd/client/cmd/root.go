// cmd/client/cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"oficina/cmd/client/cmd/cmdutil"
	"oficina/internal/app/client"
	"oficina/internal/app/client/config"
	"oficina/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	debug      bool
	jsonOutput bool
	noColor    bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "oficina",
	Short: "Oficina - compras e fluxo de caixa da oficina mecânica",
	Long: `Oficina é o cliente de terminal da API de registros da oficina.

Registra compras e serviços, mostra o histórico de compras com o total
gasto e o fluxo de caixa dos serviços (recebido / a receber), com filtros
por texto, mês e dia.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err, cfg != nil && !cfg.IsProd())
		os.Exit(1)
	}
}

// reportError печатает ошибку команды. verbose добавляет к подсказке причину.
func reportError(w io.Writer, err error, verbose bool) {
	var prompt *cmdutil.PromptError
	if !errors.As(err, &prompt) {
		fmt.Fprintf(w, "Erro: %v\n", err)
		return
	}

	if log != nil {
		log.Debug("command failed", "error", prompt.Err)
	}
	fmt.Fprintln(w, prompt.Prompt)
	if verbose && prompt.Err != nil {
		fmt.Fprintf(w, "  (%v)\n", prompt.Err)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}

	// флаги командной строки важнее конфигурации
	if serverURL != "" {
		cfg.APIURL = serverURL
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.NewWriter(cfg.Env, os.Stderr, level)

	color.NoColor = noColor || jsonOutput || !cmdutil.StdoutIsTerminal()

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("erro ao iniciar o cliente: %w", err)
	}

	cmd.SetContext(cmdutil.WithApp(cmd.Context(), app))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(config.Dir(home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	if err := bindFlags(cmd); err != nil {
		return nil, err
	}

	return config.Load()
}

// bindFlags связывает флаги с ключами viper
func bindFlags(cmd *cobra.Command) error {
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		return viper.BindPFlag("LOG_LEVEL", f)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "arquivo de configuração (padrão: ~/.oficina/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log detalhado em stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "saída em JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "desativar cores")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL da API (padrão: "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().String("log-level", "", "nível de log (debug, info, warn, error)")

	// Команды добавляются в init.go
}
