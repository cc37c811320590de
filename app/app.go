// Package app wires the graph unroller into a command-line tool: load a
// workflow IR document, unroll it, and report the result. It is the outer
// shell the spec's core explicitly excludes (§1: "no CLI, no file I/O ...
// at the core level").
package app

import (
	"fmt"
	"os"

	"github.com/agoscinski/Sirocco/core"
	"github.com/agoscinski/Sirocco/workflow"

	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"
)

const (
	fConfig   = "config"
	fWorkflow = "workflow"
)


// New builds the sirocco CLI application.
func New() *cli.App {
	return &cli.App{
		Name:  "sirocco",
		Usage: "unroll a cyclic, parameterized workflow description into a concrete dependency graph",

		Writer:    os.Stdout,
		ErrWriter: os.Stderr,

		Flags: []cli.Flag{
			&cli.PathFlag{Name: fConfig, Required: false, Value: "sirocco.yaml", Usage: "tool config file"},
			&cli.PathFlag{Name: fWorkflow, Required: false, Usage: "workflow IR file (overrides config)"},
		},

		Commands: []*cli.Command{
			buildCommand(),
			validateCommand(),
			watchCommand(),
		},
	}
}

func loadConfig(c *cli.Context) (core.Config, error) {
	cfg, err := core.NewConfig(c.Path(fConfig))
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if w := c.Path(fWorkflow); w != "" {
		cfg.WorkflowFile = w
	}
	if cfg.WorkflowFile == "" {
		return cfg, fmt.Errorf("no workflow file given (set --%s or workflow_file in --%s)", fWorkflow, fConfig)
	}
	return cfg, nil
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "unroll the workflow and print a summary",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			logger := core.NewLogger("[sirocco] ")
			logger.Info("loading workflow from %s", cfg.WorkflowFile)

			wf, err := buildWorkflow(cfg)
			if err != nil {
				printError(c, err)
				return cli.Exit("", 1)
			}
			printSummary(c, wf)
			return nil
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "unroll the workflow and exit non-zero on any error, printing \"valid\" on success",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if _, err := buildWorkflow(cfg); err != nil {
				printError(c, err)
				return cli.Exit("", 1)
			}
			fmt.Fprintln(c.App.Writer, styled("valid", termenv.ANSIGreen))
			return nil
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "re-unroll the workflow every time the IR file is written",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			mgr := core.NewIRManager(cfg.WorkflowFile)
			if _, err := mgr.Load(); err != nil {
				return fmt.Errorf("initial load: %w", err)
			}

			reportReload := func(ev core.ReloadEvent) {
				if ev.Error != nil {
					printError(c, ev.Error)
					return
				}
				wf, err := workflow.Build(ev.IR)
				if err != nil {
					printError(c, err)
					return
				}
				printSummary(c, wf)
			}

			// Report the initial build before waiting on the first write.
			if wf, err := workflow.Build(mgr.Current()); err != nil {
				printError(c, err)
			} else {
				printSummary(c, wf)
			}

			return mgr.Watch(reportReload)
		},
	}
}

// buildWorkflow loads the IR document named by cfg and unrolls it.
func buildWorkflow(cfg core.Config) (*workflow.Workflow, error) {
	mgr := core.NewIRManager(cfg.WorkflowFile)
	ir, err := mgr.Load()
	if err != nil {
		return nil, err
	}
	return workflow.Build(ir)
}

func printSummary(c *cli.Context, wf *workflow.Workflow) {
	tasks, data, edges := wf.Tasks(), wf.Data(), wf.Edges()
	fmt.Fprintln(c.App.Writer, styled(fmt.Sprintf(
		"unrolled: %d task items, %d data items, %d edges",
		len(tasks), len(data), len(edges)), termenv.ANSICyan))
}

func printError(c *cli.Context, err error) {
	fmt.Fprintln(c.App.ErrWriter, styled(err.Error(), termenv.ANSIRed))
}

func styled(s string, color termenv.Color) string {
	return termenv.String(s).Foreground(color).Bold().String()
}
