package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/internal/cli"
	"github.com/matzehuels/drawshop/pkg/errors"
)

// Exit codes.
const (
	exitError    = 1   // internal or persistence failure
	exitUsage    = 2   // bad arguments, ids, styles or formats
	exitNotFound = 3   // no drawing under the given id
	exitSignal   = 130 // interrupted (SIGINT)
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) {
			os.Exit(exitSignal)
		}
		fmt.Fprintln(os.Stderr, "Error:", errors.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

func exitCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound:
		return exitNotFound
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidID, errors.ErrCodeIndexOutOfRange:
		return exitUsage
	}
	return exitError
}
