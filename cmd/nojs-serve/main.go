package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vcrobe/topics-ui/internal/devserver"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		addr       string
		root       string
		verbose    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:           "nojs-serve",
		Short:         "Serve the topics UI WASM bundle with client-side route fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := devserver.LoadConfig(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("root") {
				cfg.Root = root
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var opts []devserver.LoggerOption
			if verbose {
				opts = append(opts, devserver.WithLevel(logrus.DebugLevel))
			}
			if jsonOutput {
				opts = append(opts, devserver.WithJSON())
			}
			log := devserver.NewLogger(cfg, opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return devserver.Run(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file (default "+devserver.DefaultConfigFile+" if present)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides config")
	cmd.Flags().StringVar(&root, "root", "", "Bundle directory, overrides config")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Log in JSON format")

	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("nojs-serve failed")
		os.Exit(1)
	}
}
