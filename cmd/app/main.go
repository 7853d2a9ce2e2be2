package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "voronoi",
		Short:        "Bounded Voronoi tessellation (Fortune's sweep)",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tessellateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
