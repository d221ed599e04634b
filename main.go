package main

import (
	"fmt"
	"os"

	"github.com/MohamedMaroufMD/MAUDE-Binary-Automator/internal/automator"
	"github.com/MohamedMaroufMD/MAUDE-Binary-Automator/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	sheetName   string
	greenColor  string
	redColor    string
	interactive bool
	showVersion bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "maude-automator [file.xlsx ...]",
		Short: "Add binary indicator columns to MAUDE Excel exports",
		Long: `maude-automator scans the Events sheet of MAUDE adverse-event exports,
finds every distinct device problem, patient problem, and patient outcome,
and appends one 0/1 indicator column per value. Original cell styling is
preserved and a timestamped backup is written before any file is changed.

With no arguments, xlsx files in the current directory whose name contains
"MAUDE" are processed.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&sheetName, "sheet", "Events", "Worksheet to process")
	rootCmd.Flags().StringVar(&greenColor, "green", "90EE90", "Fill color for binary value 1")
	rootCmd.Flags().StringVar(&redColor, "red", "FFB6C1", "Fill color for binary value 0")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a file interactively")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version and exit")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(ui.ErrorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("maude-automator %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		return nil
	}

	opts := automator.DefaultOptions()
	opts.SheetName = sheetName
	opts.GreenColor = greenColor
	opts.RedColor = redColor

	if interactive {
		p := tea.NewProgram(ui.InitialModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := p.Run()
		return err
	}

	files := args
	if len(files) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		files, err = automator.FindMAUDEFiles(cwd)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no MAUDE .xlsx files found in the current directory; pass file paths as arguments")
		}
	}

	fmt.Println(ui.TitleStyle.Render("MAUDE Binary Columns Automator"))
	fmt.Println(ui.SubtitleStyle.Render(fmt.Sprintf("%d file(s) to process", len(files))))

	successful := 0
	for _, file := range files {
		if processFile(file, opts) {
			successful++
		}
	}

	fmt.Println()
	fmt.Println(ui.SubtitleStyle.Render(fmt.Sprintf(
		"Files processed: %d • succeeded: %d • failed: %d",
		len(files), successful, len(files)-successful)))

	if successful == 0 {
		return fmt.Errorf("no file processed successfully")
	}
	return nil
}

// processFile handles one file and reports its outcome; a failure never
// stops the rest of the batch.
func processFile(path string, opts automator.Options) bool {
	fmt.Println()
	fmt.Println(ui.TitleStyle.Render("Processing " + path))

	result, err := automator.Process(path, opts, nil)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render("✗ " + err.Error()))
		return false
	}

	fmt.Println(ui.SuccessStyle.Render("✓ Validated"))
	fmt.Printf("  Device problems:  %d\n", result.DeviceValues)
	fmt.Printf("  Patient problems: %d\n", result.PatientProblems)
	fmt.Printf("  Patient outcomes: %d\n", result.PatientOutcomes)
	if len(result.ExistingBinary) > 0 {
		fmt.Printf("  Existing binary columns: %d\n", len(result.ExistingBinary))
	}

	if result.NoOp {
		fmt.Println(ui.SuccessStyle.Render("✓ No new binary columns needed"))
		return true
	}

	fmt.Printf("  New binary columns: %d\n", len(result.NewColumns))
	fmt.Printf("  Rows: %d • Columns: %d → %d\n", result.Rows, result.OriginalColumns, result.TotalColumns)
	fmt.Println(ui.SuccessStyle.Render("✓ Backup: " + result.BackupFile))
	fmt.Println(ui.SuccessStyle.Render("✓ Saved " + path))
	return true
}
