// Package cmd implements the ramp CLI commands.
//
// Each command file registers a constructor with RegisterCommand from its
// init function; Execute assembles a fresh cobra tree from them.
package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/ramp/cmd/ramp/internal/config"
	"github.com/go-drift/ramp/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Commands registered with the CLI, in registration order.
var commands []func() *cobra.Command

// RegisterCommand adds a command constructor to the CLI.
func RegisterCommand(newCmd func() *cobra.Command) {
	commands = append(commands, newCmd)
}

// session carries state shared by the root command and execute.
type session struct {
	envFile   string
	logCloser io.Closer
	logClosed bool
}

// closeLog releases the log file. It runs after every command, including
// failed ones, which skip cobra's post-run hooks.
func (s *session) closeLog() {
	if s.logCloser == nil {
		return
	}
	if err := s.logCloser.Close(); err != nil {
		log.Warn().Err(err).Msg("log_close_failed")
	}
	s.logCloser = nil
	s.logClosed = true
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "ramp",
		Short: "Ramp - time-driven value interpolation",
		Long: `Ramp drives a value from an origin to a target over time, shaped by an
easing curve, for control loops that poll at irregular intervals.

The CLI lists and samples easing curves, replays YAML presets under a
simulated clock, plots the results, and watches a preset live.`,
		Version:       Version + " (built " + BuildTime + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(s.envFile)
			if err != nil {
				return err
			}
			s.logCloser, err = cfg.ConfigureLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			errors.SetHandler(&errors.LogHandler{Verbose: cfg.Dev()})
			log.Debug().Str("mode", cfg.Mode).Int("level", cfg.LogLevel).Msg("config_loaded")
			return nil
		},
	}
	root.PersistentFlags().StringVar(&s.envFile, "env-file", ".env", "dotenv file loaded when RAMP_MODE=DEV")

	for _, newCmd := range commands {
		root.AddCommand(newCmd())
	}
	return root
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	return executeSession(&session{}, args, stdout, stderr)
}

func executeSession(s *session, args []string, stdout, stderr io.Writer) (err error) {
	defer s.closeLog()
	defer errors.Recover("cmd.Execute", func(p *errors.PanicError) { err = p })

	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err = root.Execute()
	errors.Report("cmd.Execute", err)
	return err
}
