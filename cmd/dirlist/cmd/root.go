package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dirlist/internal/config"
	"dirlist/internal/fs"
	"dirlist/internal/logging"
)

var (
	logger = logging.GetLogger()
)

// Run executes dirlist with the given arguments and returns the process
// exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return fs.ExitError
	}

	code := fs.ExitOK
	root := newRootCmd(cfg, func(c int) { code = c })
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return fs.ExitError
	}
	return code
}

func newRootCmd(cfg *config.Config, setCode func(int)) *cobra.Command {
	var (
		verbose bool
		scheme  string
	)

	rootCmd := &cobra.Command{
		Use:   "dirlist",
		Short: "Print the raw d_type and name of every directory entry",
		Long: `dirlist opens a directory stream and prints one line per entry:

  entry: <type> <name>

where <type> is the kernel's d_type value (0 unknown, 1 fifo, 2 char device,
4 directory, 6 block device, 8 regular file, 10 symlink, 12 socket,
14 whiteout). If the directory cannot be opened it prints "dirp: NULL" and
exits 1. A complete listing exits 2, or 0 with --exit-codes=conventional.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			if verbose {
				logger.SetLevel(logging.LevelDebug)
			}

			exitScheme, err := fs.ParseExitScheme(scheme)
			if err != nil {
				return err
			}

			logger.Debug("Directory: %s", cfg.Dir)
			logger.Debug("Exit scheme: %s", exitScheme)

			lister := fs.NewLister(fs.OSOpener{}, c.OutOrStdout(), exitScheme)
			setCode(lister.List(cfg.Dir))
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&cfg.Dir, "dir", "C", cfg.Dir, "Directory to list (env DIRLIST_DIR)")
	rootCmd.Flags().StringVar(&scheme, "exit-codes", string(cfg.ExitScheme), "Exit code scheme: legacy or conventional (env DIRLIST_EXIT_CODES)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return rootCmd
}
