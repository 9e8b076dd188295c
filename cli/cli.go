// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sprintertech/across-testkit/app"
	"github.com/sprintertech/across-testkit/config"
)

var (
	rootCMD = &cobra.Command{
		Use: "",
	}
	scenarioCMD = &cobra.Command{
		Use:   "scenario",
		Short: "Runs a canned spoke pool scenario per configured chain and prints the snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)

func init() {
	config.BindFlags(rootCMD)
}

func Execute() {
	rootCMD.AddCommand(scenarioCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
