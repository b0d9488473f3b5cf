// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/statsguru/internal/app"
	"github.com/law-makers/statsguru/internal/config"
	"github.com/law-makers/statsguru/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "statsguru",
	Short: "Export Statsguru innings tables to CSV",
	Long: `Statsguru walks the paginated "Innings by innings list" results of the
Statsguru stats engine and writes one normalized CSV row per innings.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	// Initialize the application lazily so -h/--help never builds clients
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetAppFromCmd(cmd) != nil {
			return nil
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		SetApp(cmd, a)
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		a := GetAppFromCmd(cmd)
		if a == nil {
			return
		}
		_ = a.Close(context.Background())
		SetApp(cmd, nil)
	}

	config.RegisterFlags(rootCmd)

	rootCmd.Flags().BoolP("help", "h", false, "Help for Statsguru")
	rootCmd.Flags().Bool("version", false, "Version for Statsguru")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpFunc(customHelpFunc)
	rootCmd.SetUsageFunc(customUsageFunc)
}

// customHelpFunc provides a colorized help output
func customHelpFunc(cmd *cobra.Command, args []string) {
	w := os.Stdout

	fmt.Fprintf(w, "\n%s%s%s\n", ui.ColorBold+ui.ColorCyan, strings.ToUpper(cmd.Name()), ui.ColorReset)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s\n", cmd.Short)
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Fprintf(w, "\n%s\n", wrapText(cmd.Long, 80))
	}

	printUsage(w, cmd)

	if cmd.HasExample() {
		fmt.Fprintf(w, "\n%sExamples%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
		for _, example := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(example)
			switch {
			case trimmed == "":
				continue
			case strings.HasPrefix(trimmed, "#"):
				fmt.Fprintf(w, "  %s%s%s\n", ui.ColorDim, trimmed, ui.ColorReset)
			default:
				fmt.Fprintf(w, "  %s$ %s%s\n", ui.ColorGreen, trimmed, ui.ColorReset)
			}
		}
	}

	printCommands(w, cmd)

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(w, "\n%sFlags%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
		printFlagsTo(w, cmd.LocalFlags().FlagUsages())
	}
	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(w, "\n%sGlobal Flags%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
		printFlagsTo(w, cmd.InheritedFlags().FlagUsages())
	}
	fmt.Fprintln(w)
}

// customUsageFunc provides a colorized usage output
func customUsageFunc(cmd *cobra.Command) error {
	w := os.Stderr

	printUsage(w, cmd)
	printCommands(w, cmd)
	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(w, "\n%sFlags%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
		printFlagsTo(w, cmd.LocalFlags().FlagUsages())
	}
	fmt.Fprintf(w, "\n%sUse \"%s --help\" for more information.%s\n", ui.ColorDim, cmd.CommandPath(), ui.ColorReset)
	return nil
}

func printUsage(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(w, "\n%sUsage%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)
	if cmd.Runnable() {
		fmt.Fprintf(w, "  %s%s%s\n", ui.ColorCyan, cmd.UseLine(), ui.ColorReset)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "  %s%s%s %s<command>%s %s[flags]%s\n",
			ui.ColorCyan, cmd.CommandPath(), ui.ColorReset,
			ui.ColorYellow, ui.ColorReset,
			ui.ColorDim, ui.ColorReset)
	}
}

func printCommands(w io.Writer, cmd *cobra.Command) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	fmt.Fprintf(w, "\n%sCommands%s\n", ui.ColorBold+ui.ColorWhite, ui.ColorReset)

	maxLen := 0
	var available []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && c.Name() != "help" {
			available = append(available, c)
			maxLen = max(maxLen, len(c.Name()))
		}
	}

	for _, c := range available {
		padding := strings.Repeat(" ", maxLen-len(c.Name())+2)
		fmt.Fprintf(w, "  %s%s%s%s%s%s%s\n",
			ui.ColorCyan, c.Name(), ui.ColorReset,
			padding,
			ui.ColorDim, c.Short, ui.ColorReset)
	}
}

// printFlagsTo prints pflag usages with aligned, colorized columns
func printFlagsTo(w io.Writer, flagUsages string) {
	lines := strings.Split(flagUsages, "\n")

	maxFlagLen := 28
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "-") {
			flagPart, _, _ := strings.Cut(trimmed, "  ")
			maxFlagLen = max(maxFlagLen, len(strings.TrimSpace(flagPart)))
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")

		if !strings.HasPrefix(trimmed, "-") {
			// continuation of the previous description
			fmt.Fprintf(w, "%s%s%s%s\n", strings.Repeat(" ", maxFlagLen+4), ui.ColorDim, trimmed, ui.ColorReset)
			continue
		}

		flagPart, descPart, ok := strings.Cut(trimmed, "  ")
		if !ok {
			fmt.Fprintf(w, "  %s%s%s\n", ui.ColorGreen, trimmed, ui.ColorReset)
			continue
		}
		flagPart = strings.TrimSpace(flagPart)
		padding := strings.Repeat(" ", maxFlagLen-len(flagPart)+2)
		fmt.Fprintf(w, "  %s%s%s%s%s%s%s\n",
			ui.ColorGreen, flagPart, ui.ColorReset,
			padding,
			ui.ColorDim, strings.TrimSpace(descPart), ui.ColorReset)
	}
}

// wrapText wraps text at the given width, keeping paragraphs and bullet lines intact
func wrapText(text string, width int) string {
	var paragraphs []string
	for _, para := range strings.Split(text, "\n\n") {
		var wrapped []string
		var current strings.Builder

		flush := func() {
			if current.Len() > 0 {
				wrapped = append(wrapped, current.String())
				current.Reset()
			}
		}

		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
				flush()
				wrapped = append(wrapped, line)
				continue
			}
			for _, word := range strings.Fields(line) {
				if current.Len() > 0 && current.Len()+1+len(word) > width {
					flush()
				}
				if current.Len() > 0 {
					current.WriteString(" ")
				}
				current.WriteString(word)
			}
		}
		flush()

		if len(wrapped) > 0 {
			paragraphs = append(paragraphs, strings.Join(wrapped, "\n"))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
