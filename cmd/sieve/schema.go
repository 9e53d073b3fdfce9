package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/sieve"
	"github.com/aretw0/sieve/internal/cli"
	"github.com/aretw0/sieve/internal/presentation/tui"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the configured index schema",
	Long:  `Parses the schema from the project file and renders it, proving the configuration is well-formed before any document is validated.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSchema(cmd); err != nil {
			fmt.Printf("Schema check failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	engine, closer, err := cli.CreateEngine(cfg, newLogger(cmd), nil)
	if err != nil {
		return err
	}
	defer closer()

	markdown := tui.SchemaMarkdown(engine.Schema())

	// Pretty output only when attached to a terminal; plain markdown
	// otherwise so the command stays pipeable.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner(sieve.Version)
		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	fmt.Print(markdown)
	return nil
}
