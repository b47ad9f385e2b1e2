package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/oft-labs/oft-policy/modules/apps/oft/client/cli"
	"github.com/oft-labs/oft-policy/modules/apps/oft/keeper"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

// dbCloser releases the database opened for the running command.
type dbCloser struct {
	db dbm.DB
}

func (c *dbCloser) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// NewRootCmd creates a new root command for oftd. The returned closer must be
// called once the command has been executed, whether or not it failed.
func NewRootCmd() (*cobra.Command, io.Closer) {
	closer := &dbCloser{}

	rootCmd := &cobra.Command{
		Use:           "oftd",
		Short:         "OFT rate limit override and amount policy node",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config, err := LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), config)

			db, err := dbm.NewDB(types.ModuleName, dbm.BackendType(config.DBBackend), config.DataDir())
			if err != nil {
				return err
			}
			closer.db = db

			k := keeper.NewKeeper(keeper.NewKVStoreService(db), logger, config.authority)
			cli.SetClientContext(cmd, cli.ClientContext{Keeper: k})

			logger.Debug("opened oft database", "home", config.Home, "backend", config.DBBackend)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return closer.Close()
		},
	}

	initRootCmd(rootCmd)

	return rootCmd, closer
}

func initRootCmd(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(FlagHome, DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(FlagAuthority, "", "the principal allowed to create OFT stores (base58)")
	rootCmd.PersistentFlags().String(FlagLogLevel, "info", "the logging level (trace|debug|info|warn|error|fatal|panic|disabled)")
	rootCmd.PersistentFlags().String(FlagLogFormat, LogFormatPlain, "the logging format (plain|json)")
	rootCmd.PersistentFlags().String(FlagDBBackend, string(dbm.GoLevelDBBackend), "the database backend (goleveldb|memdb)")

	queryCmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Querying subcommands",
	}
	queryCmd.AddCommand(cli.GetQueryCmd())

	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transactions subcommands",
	}
	txCmd.AddCommand(cli.GetTxCmd())

	rootCmd.AddCommand(
		queryCmd,
		txCmd,
		cli.GetGenesisCmd(),
	)
}

func newLogger(out io.Writer, config *Config) log.Logger {
	opts := []log.Option{log.LevelOption(config.logLevel)}
	if config.LogFormat == LogFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(out, opts...)
}
