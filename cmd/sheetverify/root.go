package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sheetverify/pkg/config"
	"github.com/dmitrymomot/sheetverify/pkg/logger"
	"github.com/dmitrymomot/sheetverify/pkg/verify"
)

type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "sheetverify",
		Short:         "Validate sheet documents against their column rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.AddCommand(newCheckCmd(a), newLintCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFormat(format),
		logger.WithLevel(a.cfg.LogLevel),
		logger.WithAttr(logger.Component("sheetverify")),
	)
	return nil
}

func (a *app) validator() *verify.Validator {
	return verify.NewValidator(
		verify.WithPatternCacheSize(a.cfg.PatternCacheSize),
		verify.WithMatchTimeout(a.cfg.MatchTimeout),
		verify.WithValidatorLogger(a.log),
	)
}

func (a *app) engineOptions() []verify.Option {
	return []verify.Option{
		verify.WithLogger(a.log),
		verify.WithValidator(a.validator()),
		verify.WithStrict(a.cfg.Strict),
	}
}
