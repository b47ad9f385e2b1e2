package cli

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

// NewImportGenesisCmd loads OFT stores from a YAML genesis file
func NewImportGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [genesis-file]",
		Short: "Load OFT stores from a YAML genesis file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			genesis := types.DefaultGenesis()
			if err := yaml.Unmarshal(bz, genesis); err != nil {
				return errorsmod.Wrapf(coreerrors.ErrInvalidRequest, "genesis file %s: %s", args[0], err)
			}
			if err := genesis.Validate(); err != nil {
				return err
			}
			for _, store := range genesis.Stores {
				if clientCtx.Keeper.HasOFTStore(cmd.Context(), store.TokenEscrow) {
					return errorsmod.Wrapf(types.ErrOFTStoreAlreadyExists, "escrow %s", store.TokenEscrow)
				}
			}

			clientCtx.Keeper.InitGenesis(cmd.Context(), *genesis)
			return printOutput(cmd, struct {
				Imported int `yaml:"imported"`
			}{Imported: len(genesis.Stores)})
		},
	}

	return cmd
}

// NewExportGenesisCmd writes every OFT store as YAML genesis
func NewExportGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every OFT store as YAML genesis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			return printOutput(cmd, clientCtx.Keeper.ExportGenesis(cmd.Context()))
		},
	}

	return cmd
}
