package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errorsmod "cosmossdk.io/errors"

	coreerrors "github.com/oft-labs/oft-policy/internal/errors"
	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

const (
	FlagAddress     = "address"
	FlagTransferID  = "transfer-id"
	FlagMinAmountLD = "min-amount-ld"
)

// GetCmdQueryOFTStore implements a command to query an OFT store by escrow
func GetCmdQueryOFTStore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store [escrow]",
		Short: "Query the OFT store owned by an escrow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			res, err := clientCtx.Keeper.OFTStore(cmd.Context(), &types.QueryOFTStoreRequest{Escrow: args[0]})
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}

	return cmd
}

// GetCmdQueryAllOFTStores implements a command to query every OFT store
func GetCmdQueryAllOFTStores() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Query all OFT stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			res, err := clientCtx.Keeper.AllOFTStores(cmd.Context(), &types.QueryAllOFTStoresRequest{})
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}

	return cmd
}

// GetCmdQueryRateLimitOverrides implements a command to query both override lists of a store
func GetCmdQueryRateLimitOverrides() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overrides [escrow]",
		Short: "Query the rate limit override lists of an OFT store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			res, err := clientCtx.Keeper.RateLimitOverrides(cmd.Context(), &types.QueryRateLimitOverridesRequest{Escrow: args[0]})
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}

	return cmd
}

// GetCmdQueryIsRateLimitOverride implements a command to query whether an address or transfer id is overridden
func GetCmdQueryIsRateLimitOverride() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-overridden [escrow]",
		Short: "Query whether an address or a transfer id is on an override list",
		Long: strings.TrimSpace(`Query whether an address or a transfer id is on an override list.
Exactly one of --address or --transfer-id must be set.

Example:
  $ oftd query oft is-overridden [escrow] --address [address]
  $ oftd query oft is-overridden [escrow] --transfer-id [transfer-id]
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			address, err := cmd.Flags().GetString(FlagAddress)
			if err != nil {
				return err
			}
			transferID, err := cmd.Flags().GetString(FlagTransferID)
			if err != nil {
				return err
			}

			req := &types.QueryIsRateLimitOverrideRequest{
				Escrow:     args[0],
				Address:    address,
				TransferID: transferID,
			}
			res, err := clientCtx.Keeper.IsRateLimitOverride(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}

	cmd.Flags().String(FlagAddress, "", "The principal to look up (base58)")
	cmd.Flags().String(FlagTransferID, "", "The transfer id to look up (hex)")
	cmd.MarkFlagsMutuallyExclusive(FlagAddress, FlagTransferID)

	return cmd
}

// GetCmdQueryConvertAmount implements a command to convert a local amount to shared decimals
func GetCmdQueryConvertAmount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [escrow] [amount-ld]",
		Short: "Convert a local decimal amount to shared decimals using a store's rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			amountLD, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			res, err := clientCtx.Keeper.ConvertAmount(cmd.Context(), &types.QueryConvertAmountRequest{Escrow: args[0], AmountLD: amountLD})
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}

	return cmd
}

// GetCmdQueryDebitView implements a command to preview the amounts of an outbound transfer
func GetCmdQueryDebitView() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debit-view [escrow] [amount-ld]",
		Short: "Preview the amounts sent and received for an outbound transfer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			amountLD, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			minAmountLD, err := cmd.Flags().GetUint64(FlagMinAmountLD)
			if err != nil {
				return err
			}

			req := &types.QueryDebitViewRequest{
				Escrow:      args[0],
				AmountLD:    amountLD,
				MinAmountLD: minAmountLD,
			}
			res, err := clientCtx.Keeper.DebitView(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}

	cmd.Flags().Uint64(FlagMinAmountLD, 0, "The minimum amount to receive, in local decimals")

	return cmd
}

// GetCmdQueryCreditView implements a command to preview the local amount of an inbound transfer
func GetCmdQueryCreditView() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit-view [escrow] [amount-sd]",
		Short: "Preview the local decimal amount credited for an inbound shared decimal amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			amountSD, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			res, err := clientCtx.Keeper.CreditView(cmd.Context(), &types.QueryCreditViewRequest{Escrow: args[0], AmountSD: amountSD})
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}

	return cmd
}

// GetCmdQueryCheckRateLimitOverride implements a command to evaluate a transfer against the override lists
func GetCmdQueryCheckRateLimitOverride() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-override [escrow] [sender] [transfer-id] [amount-ld]",
		Short: "Check whether a transfer would bypass the rate limiter",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetClientContext(cmd)
			if err != nil {
				return err
			}

			escrow, err := types.ParsePrincipalID(args[0])
			if err != nil {
				return err
			}
			sender, err := types.ParsePrincipalID(args[1])
			if err != nil {
				return err
			}
			transferID, err := types.ParseTransferID(args[2])
			if err != nil {
				return err
			}
			amountLD, err := parseAmount(args[3])
			if err != nil {
				return err
			}

			bypass, events, err := clientCtx.Keeper.CheckRateLimitOverride(cmd.Context(), escrow, sender, transferID, amountLD)
			if err != nil {
				return err
			}
			if !bypass {
				return printOutput(cmd, struct {
					Bypass bool `yaml:"bypass"`
				}{})
			}
			return printEvents(cmd, events)
		},
	}

	return cmd
}

func parseAmount(s string) (uint64, error) {
	amount, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(coreerrors.ErrInvalidRequest, "invalid amount %q: %s", s, err)
	}
	return amount, nil
}
