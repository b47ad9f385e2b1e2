package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/keeper"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

type clientContextKey struct{}

// ClientContext is what every oft command operates on. It is attached to the
// command context by the root command before any subcommand runs.
type ClientContext struct {
	Keeper keeper.Keeper
}

// SetClientContext attaches clientCtx to cmd's context.
func SetClientContext(cmd *cobra.Command, clientCtx ClientContext) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, clientContextKey{}, clientCtx))
}

// GetClientContext returns the ClientContext attached to cmd's context.
func GetClientContext(cmd *cobra.Command) (ClientContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if clientCtx, ok := ctx.Value(clientContextKey{}).(ClientContext); ok {
			return clientCtx, nil
		}
	}
	return ClientContext{}, errors.New("oft client context is not set")
}

// GetQueryCmd returns the query commands for the OFT policy module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the OFT policy module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	queryCmd.AddCommand(
		GetCmdQueryOFTStore(),
		GetCmdQueryAllOFTStores(),
		GetCmdQueryRateLimitOverrides(),
		GetCmdQueryIsRateLimitOverride(),
		GetCmdQueryConvertAmount(),
		GetCmdQueryDebitView(),
		GetCmdQueryCreditView(),
		GetCmdQueryCheckRateLimitOverride(),
	)
	return queryCmd
}

// GetTxCmd returns the tx commands for the OFT policy module
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "OFT policy transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	txCmd.AddCommand(
		NewInitOFTStoreCmd(),
		NewManageRateLimitOverrideCmd(),
		NewManageRateLimitOverrideTransferIDCmd(),
		NewSetPauseCmd(),
	)
	return txCmd
}

// GetGenesisCmd returns the genesis import and export commands
func GetGenesisCmd() *cobra.Command {
	genesisCmd := &cobra.Command{
		Use:                        "genesis",
		Short:                      "Import and export the OFT policy state",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	genesisCmd.AddCommand(
		NewImportGenesisCmd(),
		NewExportGenesisCmd(),
	)
	return genesisCmd
}

func validateCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return errorsmod.Wrapf(coreerrors.ErrUnknownRequest, "unknown subcommand %q", args[0])
}

// printOutput writes v to the command output as YAML.
func printOutput(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type eventOutput struct {
	Type       string            `yaml:"type"`
	Attributes map[string]string `yaml:"attributes"`
}

// printEvents writes events to the command output in the order they occurred.
func printEvents(cmd *cobra.Command, events []types.Event) error {
	out := make([]eventOutput, len(events))
	for i, ev := range events {
		attrs := make(map[string]string)
		for _, attr := range ev.Attributes() {
			attrs[attr.Key] = attr.Value
		}
		out[i] = eventOutput{Type: ev.EventType(), Attributes: attrs}
	}
	return printOutput(cmd, struct {
		Events []eventOutput `yaml:"events"`
	}{Events: out})
}
