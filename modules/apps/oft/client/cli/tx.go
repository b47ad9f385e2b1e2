package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/keeper"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

const (
	FlagFrom                   = "from"
	FlagAdmin                  = "admin"
	FlagTokenMint              = "token-mint"
	FlagEndpointProgram        = "endpoint-program"
	FlagOFTType                = "oft-type"
	FlagLD2SDRate              = "ld2sd-rate"
	FlagLocalDecimals          = "local-decimals"
	FlagSharedDecimals         = "shared-decimals"
	FlagDefaultFeeBps          = "default-fee-bps"
	FlagPauser                 = "pauser"
	FlagUnpauser               = "unpauser"
	FlagMaxOverrides           = "max-overrides"
	FlagMaxOverrideTransferIDs = "max-override-transfer-ids"
	FlagBatchFile              = "batch-file"
)

// NewInitOFTStoreCmd creates the OFT store owned by an escrow
func NewInitOFTStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-store [escrow]",
		Short: "Create the OFT store owned by an escrow",
		Long: strings.TrimSpace(`Create the OFT store owned by an escrow. The signer must be the
configured authority. The conversion rate is taken from --ld2sd-rate, or derived from
--local-decimals and --shared-decimals when no rate is given.

Example:
  $ oftd tx oft init-store [escrow] --from [authority] --admin [admin] --local-decimals 18 --shared-decimals 6
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			signer, err := principalFlag(cmd, FlagFrom, true)
			if err != nil {
				return err
			}

			params, err := initStoreParamsFromCmd(cmd, args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgInitOFTStore(*signer, params)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			res, err := keeper.NewMsgServerImpl(clientCtx.Keeper).InitOFTStore(cmd.Context(), msg)
			if err != nil {
				return err
			}
			return printEvents(cmd, res.Events)
		},
	}

	cmd.Flags().String(FlagFrom, "", "The signing principal (base58)")
	cmd.Flags().String(FlagAdmin, "", "The store admin principal (base58)")
	cmd.Flags().String(FlagTokenMint, "", "The token mint principal (base58)")
	cmd.Flags().String(FlagEndpointProgram, "", "The endpoint program principal (base58)")
	cmd.Flags().String(FlagOFTType, types.OFTTypeAdapter.String(), "The OFT type: native or adapter")
	cmd.Flags().Uint64(FlagLD2SDRate, 0, "The local to shared decimal conversion rate")
	cmd.Flags().Uint8(FlagLocalDecimals, 0, "The token's local decimals")
	cmd.Flags().Uint8(FlagSharedDecimals, 0, "The shared decimals")
	cmd.Flags().Uint16(FlagDefaultFeeBps, 0, "The default fee in basis points")
	cmd.Flags().String(FlagPauser, "", "The pauser principal (base58)")
	cmd.Flags().String(FlagUnpauser, "", "The unpauser principal (base58)")
	cmd.Flags().Uint8(FlagMaxOverrides, types.DefaultMaxRateLimitOverrides, "The principal override list capacity")
	cmd.Flags().Uint8(FlagMaxOverrideTransferIDs, types.DefaultMaxRateLimitOverrideTransferIDs, "The transfer id override list capacity")
	_ = cmd.MarkFlagRequired(FlagFrom)
	_ = cmd.MarkFlagRequired(FlagAdmin)

	return cmd
}

// NewManageRateLimitOverrideCmd adds or removes principals from the rate limit override list
func NewManageRateLimitOverrideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage-override [escrow] [actions] [addresses]",
		Short: "Add or remove principals from the rate limit override list",
		Long: strings.TrimSpace(`Add or remove principals from the rate limit override list of a store.
Actions and addresses are comma separated and applied pairwise in order. The batch is
applied atomically. Instead of positional lists a YAML batch file may be given:

  actions: [add, remove]
  addresses: [<base58>, <base58>]

Example:
  $ oftd tx oft manage-override [escrow] add,remove [addr1],[addr2] --from [admin]
  $ oftd tx oft manage-override [escrow] --batch-file batch.yaml --from [admin]
`),
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			admin, escrow, err := batchSignerAndEscrow(cmd, args[0])
			if err != nil {
				return err
			}

			var batch struct {
				Actions   []types.OverrideAction `yaml:"actions"`
				Addresses []types.PrincipalID    `yaml:"addresses"`
			}
			if err := readBatch(cmd, args, &batch, func(actions, keys []string) error {
				if batch.Actions, err = types.ParseOverrideActions(actions); err != nil {
					return err
				}
				batch.Addresses, err = parseList(keys, types.ParsePrincipalID)
				return err
			}); err != nil {
				return err
			}

			msg := types.NewMsgManageRateLimitOverride(admin, escrow, batch.Actions, batch.Addresses)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			res, err := keeper.NewMsgServerImpl(clientCtx.Keeper).ManageRateLimitOverride(cmd.Context(), msg)
			if err != nil {
				return err
			}
			return printEvents(cmd, res.Events)
		},
	}

	addBatchFlags(cmd)
	return cmd
}

// NewManageRateLimitOverrideTransferIDCmd adds or removes transfer ids from the rate limit override list
func NewManageRateLimitOverrideTransferIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage-override-transfer-id [escrow] [actions] [transfer-ids]",
		Short: "Add or remove transfer ids from the rate limit override list",
		Long: strings.TrimSpace(`Add or remove transfer ids from the rate limit override list of a store.
Actions and hex transfer ids are comma separated and applied pairwise in order. The batch
is applied atomically. Instead of positional lists a YAML batch file may be given:

  actions: [add]
  transfer_ids: [<hex>]

Example:
  $ oftd tx oft manage-override-transfer-id [escrow] add [transfer-id] --from [admin]
`),
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			admin, escrow, err := batchSignerAndEscrow(cmd, args[0])
			if err != nil {
				return err
			}

			var batch struct {
				Actions     []types.OverrideAction `yaml:"actions"`
				TransferIDs []types.TransferID     `yaml:"transfer_ids"`
			}
			if err := readBatch(cmd, args, &batch, func(actions, keys []string) error {
				if batch.Actions, err = types.ParseOverrideActions(actions); err != nil {
					return err
				}
				batch.TransferIDs, err = parseList(keys, types.ParseTransferID)
				return err
			}); err != nil {
				return err
			}

			msg := types.NewMsgManageRateLimitOverrideTransferID(admin, escrow, batch.Actions, batch.TransferIDs)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			res, err := keeper.NewMsgServerImpl(clientCtx.Keeper).ManageRateLimitOverrideTransferID(cmd.Context(), msg)
			if err != nil {
				return err
			}
			return printEvents(cmd, res.Events)
		},
	}

	addBatchFlags(cmd)
	return cmd
}

// NewSetPauseCmd pauses or unpauses a store
func NewSetPauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-pause [escrow] [paused]",
		Short: "Pause or unpause an OFT store",
		Long: strings.TrimSpace(`Pause or unpause an OFT store. Pausing must be signed by the pauser
and unpausing by the unpauser.

Example:
  $ oftd tx oft set-pause [escrow] true --from [pauser]
`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			signer, err := principalFlag(cmd, FlagFrom, true)
			if err != nil {
				return err
			}

			escrow, err := types.ParsePrincipalID(args[0])
			if err != nil {
				return err
			}

			paused, err := strconv.ParseBool(args[1])
			if err != nil {
				return errorsmod.Wrapf(coreerrors.ErrInvalidRequest, "paused must be a boolean: %s", err)
			}

			msg := types.NewMsgSetPause(*signer, escrow, paused)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			res, err := keeper.NewMsgServerImpl(clientCtx.Keeper).SetPause(cmd.Context(), msg)
			if err != nil {
				return err
			}
			return printEvents(cmd, res.Events)
		},
	}

	cmd.Flags().String(FlagFrom, "", "The signing principal (base58)")
	_ = cmd.MarkFlagRequired(FlagFrom)

	return cmd
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagFrom, "", "The signing admin principal (base58)")
	cmd.Flags().String(FlagBatchFile, "", "A YAML file holding the batch")
	_ = cmd.MarkFlagRequired(FlagFrom)
}

func batchSignerAndEscrow(cmd *cobra.Command, escrowArg string) (types.PrincipalID, types.PrincipalID, error) {
	admin, err := principalFlag(cmd, FlagFrom, true)
	if err != nil {
		return types.PrincipalID{}, types.PrincipalID{}, err
	}

	escrow, err := types.ParsePrincipalID(escrowArg)
	if err != nil {
		return types.PrincipalID{}, types.PrincipalID{}, err
	}
	return *admin, escrow, nil
}

// readBatch fills batch from --batch-file when set, otherwise passes the
// positional comma separated lists to parseArgs.
func readBatch(cmd *cobra.Command, args []string, batch any, parseArgs func(actions, keys []string) error) error {
	batchFile, err := cmd.Flags().GetString(FlagBatchFile)
	if err != nil {
		return err
	}

	if batchFile != "" {
		if len(args) > 1 {
			return errorsmod.Wrap(coreerrors.ErrInvalidRequest, "positional batch lists cannot be combined with --batch-file")
		}

		bz, err := os.ReadFile(batchFile)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(bz, batch); err != nil {
			return errorsmod.Wrapf(coreerrors.ErrInvalidRequest, "batch file %s: %s", batchFile, err)
		}
		return nil
	}

	if len(args) != 3 {
		return errorsmod.Wrap(coreerrors.ErrInvalidRequest, "expected [actions] [keys] or --batch-file")
	}
	return parseArgs(splitList(args[1]), splitList(args[2]))
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func parseList[T any](items []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(items))
	for i, item := range items {
		parsed, err := parse(item)
		if err != nil {
			return nil, err
		}
		out[i] = parsed
	}
	return out, nil
}

// principalFlag parses a base58 principal flag. It returns nil for an unset
// optional flag.
func principalFlag(cmd *cobra.Command, name string, required bool) (*types.PrincipalID, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}

	if value == "" {
		if required {
			return nil, errorsmod.Wrapf(coreerrors.ErrInvalidAddress, "--%s is required", name)
		}
		return nil, nil
	}

	p, err := types.ParsePrincipalID(value)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "--%s", name)
	}
	return &p, nil
}

func initStoreParamsFromCmd(cmd *cobra.Command, escrowArg string) (types.InitStoreParams, error) {
	var params types.InitStoreParams

	escrow, err := types.ParsePrincipalID(escrowArg)
	if err != nil {
		return params, err
	}
	params.TokenEscrow = escrow

	for _, f := range []struct {
		name     string
		required bool
		dst      *types.PrincipalID
	}{
		{FlagAdmin, true, &params.Admin},
		{FlagTokenMint, false, &params.TokenMint},
		{FlagEndpointProgram, false, &params.EndpointProgram},
	} {
		p, err := principalFlag(cmd, f.name, f.required)
		if err != nil {
			return params, err
		}
		if p != nil {
			*f.dst = *p
		}
	}

	if params.Pauser, err = principalFlag(cmd, FlagPauser, false); err != nil {
		return params, err
	}
	if params.Unpauser, err = principalFlag(cmd, FlagUnpauser, false); err != nil {
		return params, err
	}

	oftType, err := cmd.Flags().GetString(FlagOFTType)
	if err != nil {
		return params, err
	}
	if params.OFTType, err = types.ParseOFTType(oftType); err != nil {
		return params, err
	}

	if params.LD2SDRate, err = cmd.Flags().GetUint64(FlagLD2SDRate); err != nil {
		return params, err
	}
	if params.LD2SDRate == 0 {
		localDecimals, err := cmd.Flags().GetUint8(FlagLocalDecimals)
		if err != nil {
			return params, err
		}
		sharedDecimals, err := cmd.Flags().GetUint8(FlagSharedDecimals)
		if err != nil {
			return params, err
		}
		if params.LD2SDRate, err = types.RateFromDecimals(localDecimals, sharedDecimals); err != nil {
			return params, errorsmod.Wrap(err, "failed to derive conversion rate")
		}
	}

	if params.DefaultFeeBps, err = cmd.Flags().GetUint16(FlagDefaultFeeBps); err != nil {
		return params, err
	}
	if params.MaxRateLimitOverrides, err = cmd.Flags().GetUint8(FlagMaxOverrides); err != nil {
		return params, err
	}
	if params.MaxRateLimitOverrideTransferIDs, err = cmd.Flags().GetUint8(FlagMaxOverrideTransferIDs); err != nil {
		return params, err
	}

	return params, nil
}
