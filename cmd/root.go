package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imagemeta",
		Short: "Batch image description tool with LLM-generated metadata sidecars",
		Long: `Imagemeta analyzes batches of images with vision-capable LLMs and exports
each image with a metadata sidecar document under a collision-safe,
templated file name.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newProcessCmd())

	return cmd
}
