package dirflat

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Verbose     bool
	NoAnimation bool
	CopySummary bool
	Completion  string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "dirflat <directory>",
	Short: "Rename files so their names carry the directory chain above them.",
	Long: `Recursively rename every file under a directory so its name is prefixed
with the lowercased chain of directory names leading to it, joined by " - ".
Files stay in their directories; only their names change.

Directories starting with '.' or '_' are not entered, and dotfiles are
never renamed. A single leading '+' or '-' on a directory name is dropped
from the prefix.

Example: root/Sub/Notes.txt becomes root/Sub/root - sub - notes.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		InitLog(LogOptions{Verbose: cfg.Verbose})

		resolver, err := NewPathResolver()
		if err != nil {
			return err
		}
		root, err := resolver.ResolveDir(args[0])
		if err != nil {
			return err
		}

		app := NewApp(&Config{Root: root})
		ui := NewTUI(app, cfg.NoAnimation)
		summary, err := ui.Run()
		if err != nil {
			return err
		}

		if cfg.CopySummary {
			if err := clipboard.WriteAll(summary.Plain()); err != nil {
				return fmt.Errorf("copying summary to clipboard: %w", err)
			}
		}
		return nil
	},
}

func handleCompletion(cmd *cobra.Command) error {
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every rename and skip to stderr")
	rootCmd.Flags().BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable spinner")
	rootCmd.Flags().BoolVarP(&cfg.CopySummary, "copy", "c", false, "Copy the rename summary to the clipboard")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
