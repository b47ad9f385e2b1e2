package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/oft-labs/oft-policy/cmd/oftd/cmd"
)

func main() {
	rootCmd, closer := cmd.NewRootCmd()
	err := rootCmd.Execute()
	if closeErr := closer.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.NewLogger(rootCmd.OutOrStderr()).Error("failure when running oftd", "err", err)
		os.Exit(1)
	}
}
