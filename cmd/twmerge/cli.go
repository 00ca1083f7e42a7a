package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/twmerge"
	"github.com/npillmayer/twmerge/config"
	"github.com/npillmayer/twmerge/htmlclass"
	"github.com/npillmayer/twmerge/internal/server"
	"github.com/npillmayer/twmerge/stylesheet"
	"github.com/spf13/cobra"
)

// traceKeys lists the trace keys raised by --verbose.
var traceKeys = []string{
	"twmerge", "twmerge.config", "twmerge.classmap", "twmerge.stylesheet",
	"twmerge.html", "twmerge.server",
}

type options struct {
	prefix      string
	separator   string
	configPath  string
	stylesheets []string
	verbose     bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	rootCommand := &cobra.Command{
		Use:   "twmerge",
		Short: "Merge utility class lists without style conflicts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				for _, key := range traceKeys {
					tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
				}
			}
		},
	}
	rootCommand.SilenceUsage = true
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&opts.prefix, "prefix", getEnv(envPrefix, ""), "class prefix, e.g. \"tw-\"")
	flags.StringVar(&opts.separator, "separator", getEnv(envSeparator, config.DefaultSeparator), "modifier separator")
	flags.StringVar(&opts.configPath, "config", getEnv(envConfig, ""), "YAML configuration file")
	flags.StringArrayVar(&opts.stylesheets, "stylesheet", nil, "CSS or HTML file with component classes (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace to the log")
	rootCommand.AddCommand(newMergeCommand(opts))
	rootCommand.AddCommand(newHTMLCommand(opts))
	rootCommand.AddCommand(newExplainCommand(opts))
	rootCommand.AddCommand(newGroupsCommand(opts))
	rootCommand.AddCommand(newServeCommand(opts))
	return rootCommand
}

// newMerger builds a merger from the configuration file, the stylesheets
// and the prefix and separator options, in this order.
func newMerger(cmd *cobra.Command, opts *options) (*twmerge.Merger, error) {
	cfg := config.Default()
	sheets := opts.stylesheets
	if opts.configPath != "" {
		f, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
		if err = f.Apply(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
		sheets = append(f.Stylesheets, sheets...)
	}
	if len(sheets) > 0 {
		sheet, err := stylesheet.LoadAll(sheets...)
		if err != nil {
			return nil, fmt.Errorf("stylesheet error: %w", err)
		}
		cfg.Extend(sheet.Extension())
	}
	if overridden(cmd, "prefix", envPrefix) {
		cfg.Prefix = opts.prefix
	}
	if overridden(cmd, "separator", envSeparator) {
		cfg.Separator = opts.separator
	}
	m, err := twmerge.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return m, nil
}

// overridden is true if an option has been set by flag or environment.
func overridden(cmd *cobra.Command, flag, env string) bool {
	if f := cmd.Flag(flag); f != nil && f.Changed {
		return true
	}
	return os.Getenv(env) != ""
}

func newMergeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "merge [class-list…]",
		Short: "Merge the arguments, or every line of stdin, into one class list",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMerger(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				_, err = fmt.Fprintln(out, m.Merge(args...))
				return err
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if _, err = fmt.Fprintln(out, m.Merge(scanner.Text())); err != nil {
					return err
				}
			}
			if err = scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		},
	}
}

func newHTMLCommand(opts *options) *cobra.Command {
	var selector string
	htmlCommand := &cobra.Command{
		Use:   "html [file]",
		Short: "Merge the class attributes of an HTML document (stdin if no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMerger(cmd, opts)
			if err != nil {
				return err
			}
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("html: %w", err)
				}
				defer f.Close()
				in = f
			}
			n, err := htmlclass.Rewrite(in, cmd.OutOrStdout(), m, selector)
			if err != nil {
				return fmt.Errorf("html: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d class attributes merged\n", n)
			return nil
		},
	}
	htmlCommand.Flags().StringVar(&selector, "selector", htmlclass.DefaultSelector, "CSS selector of the elements to rewrite")
	return htmlCommand
}

func newExplainCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain class…",
		Short: "Show class group, modifier context and overridden groups of classes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMerger(cmd, opts)
			if err != nil {
				return err
			}
			for _, class := range args {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), m.Explain(class)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newGroupsCommand(opts *options) *cobra.Command {
	var list bool
	groupsCommand := &cobra.Command{
		Use:   "groups",
		Short: "Print the class map as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMerger(cmd, opts)
			if err != nil {
				return err
			}
			if !list {
				return m.WriteClassMap(cmd.OutOrStdout())
			}
			for _, g := range m.Groups() {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), g); err != nil {
					return err
				}
			}
			return nil
		},
	}
	groupsCommand.Flags().BoolVar(&list, "list", false, "list class group IDs only")
	return groupsCommand
}

func newServeCommand(opts *options) *cobra.Command {
	var addr string
	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP merge service",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMerger(cmd, opts)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.ErrOrStderr(), "twmerge listening on %s\n", addr)
			return server.ListenAndServe(ctx, addr, server.New(m).Handler())
		},
	}
	serveCommand.Flags().StringVar(&addr, "addr", getEnv(envAddr, ":8080"), "listen address")
	return serveCommand
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
