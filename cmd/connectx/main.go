// connectx plays connect-x games from the command line. Games are kept as
// named saves, so each command makes one step and exits.
//
// Usage:
//
//	connectx variants              - List board variants
//	connectx new [save]            - Start a game and save it
//	connectx drop <save> <column>  - Drop a piece (computer replies in pvc mode)
//	connectx auto <save>           - Let the computer play its moves
//	connectx hint <save>           - Ask the computer for a suggestion
//	connectx show <save>           - Print a saved game
//	connectx saves                 - List saved games
//	connectx delete <save>         - Delete a saved game
//	connectx stats                 - Show results of finished games
//	connectx configs ...           - Manage named board configurations
//
// Global flags:
//
//	--store <kind>       - sqlite, postgres or json (default: sqlite)
//	--db <dsn>           - Database path, Postgres DSN or save directory
//	--seed <value>       - RNG seed for the computer player
//	--log-level <level>  - debug, info, warn or error
//	--no-color           - Disable colored output
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectx/internal/games/connectx"
	"github.com/vovakirdan/connectx/internal/platform/text"
	"github.com/vovakirdan/connectx/internal/storage"
)

var (
	// Global flags
	flagStore    string
	flagDB       string
	flagSeed     int64
	flagLogLevel string
	flagNoColor  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "connectx",
	})
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectx",
	Short: "Connect-X - gravity board games against friends or the computer",
	Long: `Connect-X plays connect-four style games of any size: choose the board,
the run length needed to win, and whether the board wraps around.

Available commands:
  variants - Show the built-in board variants
  new      - Start a new game
  drop     - Drop a piece into a column
  auto     - Let the computer move
  hint     - Suggest a move
  show     - Print a saved game
  saves    - List saved games
  delete   - Delete a saved game
  stats    - Results of finished games
  configs  - Manage named configurations

Environment:
  CONNECTX_STORE, CONNECTX_DB and CONNECTX_LOG_LEVEL provide defaults for
  --store, --db and --log-level. A .env file in the working directory is read.

Examples:
  connectx new friday --variant cylinder --mode pvc --difficulty medium
  connectx drop friday 4
  connectx show friday`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.KindSQLite, "Save backend: sqlite, postgres or json")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path, Postgres DSN or save directory (default depends on --store)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the computer player (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configsCmd)
}

// setup applies environment defaults for flags left unset and configures the logger.
func setup(cmd *cobra.Command, args []string) error {
	envDefault(cmd, "store", "CONNECTX_STORE", &flagStore)
	envDefault(cmd, "db", "CONNECTX_DB", &flagDB)
	envDefault(cmd, "log-level", "CONNECTX_LOG_LEVEL", &flagLogLevel)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

func envDefault(cmd *cobra.Command, flag, env string, dst *string) {
	if f := cmd.Flag(flag); f != nil && f.Changed {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// fail prints an error the way every command reports one and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func openStore() storage.Store {
	store, err := storage.Open(flagStore, flagDB, storage.WithLogger(logger))
	if err != nil {
		fail("opening %s store: %v", flagStore, err)
	}
	logger.Debug("store opened", "kind", flagStore)
	return store
}

func matchOptions() []connectx.Option {
	opts := []connectx.Option{connectx.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, connectx.WithSeed(flagSeed))
	}
	return opts
}

func renderer() *text.Renderer {
	color := !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))
	return text.NewRenderer(color)
}
