package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sieve/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check documents against the configured schema",
	Long:  `Validates one or more JSON/YAML documents against the schema from the project file and reports the first non-conforming field path per document.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	engine, closer, err := cli.CreateEngine(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer closer()

	ctx := context.Background()
	invalid := 0

	for _, path := range args {
		doc, err := cli.LoadDocument(path)
		if err != nil {
			return err
		}

		res, err := engine.Validate(ctx, doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if res.Valid {
			fmt.Printf("%s: OK (%s)\n", path, res.Took.Formatted)
		} else {
			fmt.Printf("%s: invalid at %q (%s)\n", path, res.Path, res.Took.Formatted)
			invalid++
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d documents invalid", invalid, len(args))
	}
	return nil
}
