package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/sieve/internal/cli"
	mcpAdapter "github.com/aretw0/sieve/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long:  `Exposes document validation and ingestion as MCP tools, over stdio by default or SSE with --port.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMCP(cmd); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	mcpCmd.Flags().Int("port", 0, "Serve over SSE on this port instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	engine, closer, err := cli.CreateEngine(cfg, newLogger(cmd), nil)
	if err != nil {
		return err
	}
	defer closer()

	server := mcpAdapter.NewServer(engine)

	port, _ := cmd.Flags().GetInt("port")
	if port > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.ServeSSE(ctx, port)
	}

	return server.ServeStdio()
}
