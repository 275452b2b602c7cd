// Package main is a small command that asks the user to pick one of its
// arguments and prints the choice, for use in shell scripts:
//
//	branch=$(picker --banner "Switch to" main develop feature/login)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/nao1215/menu"
	"github.com/spf13/cobra"
)

type options struct {
	banner  string
	prompt  string
	theme   string
	letters bool
	once    bool
	debug   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "picker [flags] item...",
		Short:         "Ask the user to pick one of the given items",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.banner, "banner", "b", "", "text shown above the items")
	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "> ", "input prompt")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "default", "color theme (default, dark, nightowl, dracula, monokai)")
	cmd.Flags().BoolVarP(&opts.letters, "letters", "l", false, "label items a, b, c instead of numbers")
	cmd.Flags().BoolVar(&opts.once, "once", false, "ask once and print free text when nothing matches")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log each round to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	theme, ok := menu.Themes[opts.theme]
	if !ok {
		return fmt.Errorf("unknown theme %q", opts.theme)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "picker"})
	if opts.debug {
		logger.SetLevel(log.DebugLevel)
	}

	// Menus go to stderr so stdout carries only the answer.
	engine, err := menu.NewLineEngine(
		menu.WithTheme(theme),
		menu.WithOutput(os.Stderr),
		menu.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer engine.Close()

	m, err := menu.FromSlice(args)
	if err != nil {
		return err
	}
	m = m.WithLogger(logger)
	if opts.banner != "" {
		m = m.WithBanner(theme.BannerText(opts.banner))
	}
	if opts.letters {
		m = m.WithLabeler(menu.PadLabel(2, menu.LetterLabel))
	} else {
		m = m.WithLabeler(theme.Labeler())
	}

	ctx := cmd.Context()
	var answer string
	if opts.once {
		res, err := menu.Ask(ctx, engine, m, opts.prompt)
		if err != nil {
			return handleErr(logger, err)
		}
		if item, ok := res.Matched(); ok {
			answer = item
		} else {
			answer, _ = res.Other()
		}
	} else {
		answer, err = menu.AskRepeatedly(ctx, engine, m, opts.prompt, theme.ErrorText("Please pick one of the listed items"))
		if err != nil {
			return handleErr(logger, err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}

func handleErr(logger *log.Logger, err error) error {
	if errors.Is(err, menu.ErrInterrupted) || errors.Is(err, menu.ErrEOF) {
		logger.Debug("cancelled", "err", err)
		return err
	}
	logger.Error("picker failed", "err", err)
	return err
}
