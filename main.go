package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "termfolio",
		Short: "A terminal-styled developer portfolio",
		Long: `termfolio serves a portfolio site with a filterable project catalog
and a switchable color theme. It can also list the catalog and the
available themes from the command line.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./termfolio.yaml)")

	root.AddCommand(
		newServeCmd(&cfgFile),
		newProjectsCmd(),
		newThemesCmd(&cfgFile),
	)
	return root
}
