package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/injective-tools/injective-address-api/pkg/utils"
	"github.com/injective-tools/injective-address-api/pkg/wallet"
)

const (
	// Application constants
	appName = "injective-address-api"
	version = "v1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Injective address conversion service",
	Long: `injective-address-api converts wallet addresses between the EVM hex
format (0x...), the Injective bech32 format (inj1...) and any other Cosmos
bech32 format (cosmos1..., osmo1..., terra1..., ...).

All conversions are pure re-encodings of the same 20-byte account
identifier. The tool can run one-shot conversions from the command line or
serve a REST API for web clients.`,
	Version: version,
}

// initCmd initializes the service configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the service configuration",
	Long: `Write the default configuration file. The server reads it on startup;
edit it to change the port, batch limits or cache behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := utils.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("configuration already exists at %s", configPath)
		}

		fmt.Printf("Initializing %s %s\n", appName, version)
		return utils.SaveConfig(utils.DefaultConfig())
	},
}

// convertCmd converts a single address from the command line
var convertCmd = &cobra.Command{
	Use:   "convert <address>",
	Short: "Convert an address to both Injective and EVM representations",
	Long: `Auto-detect the format of the given address and print both its
Injective (inj1...) and EVM (0x...) representations as JSON.

With --to, the address must be an Injective address and is re-encoded under
the given bech32 prefix instead.

Examples:
  injective-address-api convert 0xAF79152AC5dF276D9A8e1E2E22822f9713474902
  injective-address-api convert cosmos14au322k9munkmx5wrchz9q30juf5wjgzq37yyy
  injective-address-api convert inj14au322k9munkmx5wrchz9q30juf5wjgz2cfqku --to osmo`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPrefix, _ := cmd.Flags().GetString("to")

		if targetPrefix != "" {
			converted, err := wallet.InjectiveToCosmos(args[0], targetPrefix)
			if err != nil {
				return err
			}
			fmt.Println(converted)
			return nil
		}

		result, err := wallet.ConvertAddress(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

// detectCmd classifies an address without converting it
var detectCmd = &cobra.Command{
	Use:   "detect <address>",
	Short: "Detect the format of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := wallet.DetectAddressType(args[0])
		if err != nil {
			return err
		}
		if format.Prefix != "" {
			fmt.Printf("%s (prefix: %s)\n", format.Type, format.Prefix)
		} else {
			fmt.Println(format.Type)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(detectCmd)

	convertCmd.Flags().String("to", "", "re-encode an inj address under this bech32 prefix (e.g. cosmos, osmo)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
