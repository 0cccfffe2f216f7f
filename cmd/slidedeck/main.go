// Package main provides the slidedeck CLI: build PowerPoint decks from
// spreadsheet, markdown and image files, and preview written decks.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"slidedeck/deck"
	"slidedeck/logger"
	"slidedeck/table"
)

var (
	outputPath   string
	templatePath string
	deckKind     string
	deckTitle    string
	deckAuthor   string
	deckDate     string
	fontFamily   string
	fontSize     int
	logDir       string

	previewSlides int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slidedeck",
		Short: "Build PowerPoint decks from tables, plots and markdown",
	}

	buildCmd := &cobra.Command{
		Use:   "build [inputs...]",
		Short: "Build a deck from xlsx, markdown and image files",
		Long: `build assembles one deck from the given inputs, in order:
.xlsx files contribute one table slide per sheet, .md files one text
slide each, and .png/.jpg/.jpeg/.gif files one plot slide each.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBuild,
	}
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "deck.pptx", "Output .pptx path")
	buildCmd.Flags().StringVar(&templatePath, "template", "", "Existing .pptx used as the deck base")
	buildCmd.Flags().StringVar(&deckKind, "kind", "", "Title slide: deck kind text")
	buildCmd.Flags().StringVar(&deckTitle, "title", "", "Title slide: title text")
	buildCmd.Flags().StringVar(&deckAuthor, "author", "", "Title slide: author text")
	buildCmd.Flags().StringVar(&deckDate, "date", "", "Title slide: date text")
	buildCmd.Flags().StringVar(&fontFamily, "font", "", "Font family (default Calibri)")
	buildCmd.Flags().IntVar(&fontSize, "font-size", 0, "Table body font size (default 10)")
	buildCmd.Flags().StringVar(&logDir, "log-dir", "", "Directory for build log files")

	previewCmd := &cobra.Command{
		Use:   "preview [deck.pptx]",
		Short: "Print a per-slide text summary of a written deck",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().IntVar(&previewSlides, "slides", 0, "Maximum slides to summarize (0 = all)")

	rootCmd.AddCommand(buildCmd, previewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts := deck.Options{
		TemplatePath: templatePath,
		FontFamily:   fontFamily,
		FontSize:     fontSize,
	}

	if logDir != "" {
		lg := logger.NewLogger()
		if err := lg.Init(logDir); err != nil {
			return err
		}
		defer lg.Close()
		opts.Log = lg
	}

	wb, err := deck.New(opts)
	if err != nil {
		return err
	}

	if deckKind != "" || deckTitle != "" || deckAuthor != "" || deckDate != "" {
		wb.AddTitleSlide(deckKind, deckTitle, deckAuthor, deckDate)
	}

	for _, input := range args {
		if err := addInput(wb, input); err != nil {
			return err
		}
	}

	if err := wb.Save(outputPath); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d slides)\n", outputPath, wb.SlideCount())
	return nil
}

// addInput appends the slides for one input file, routed by extension.
func addInput(wb *deck.Workbook, path string) error {
	name := filepath.Base(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return fmt.Errorf("failed to open Excel file: %w", err)
		}
		defer f.Close()

		for _, sheet := range f.GetSheetList() {
			t, err := table.FromExcelSheet(f, sheet)
			if err != nil {
				return err
			}
			if _, err := wb.Add(t, name, sheet); err != nil {
				return err
			}
		}
		return nil

	case ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read markdown file: %w", err)
		}
		_, err = wb.Add(string(data), name, "")
		return err

	case ".png", ".jpg", ".jpeg", ".gif":
		p, err := deck.PlotFromFile(path)
		if err != nil {
			return err
		}
		_, err = wb.Add(p, name, "")
		return err

	default:
		return fmt.Errorf("%w: file %q", deck.ErrUnsupportedInput, path)
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	preview, err := deck.Preview(args[0], previewSlides)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d slides\n", args[0], preview.SlideCount)
	for i, slide := range preview.Slides {
		fmt.Printf("  %d. %s\n", i+1, slide.Title)
		for _, text := range slide.Texts {
			fmt.Printf("     %s\n", text)
		}
	}
	return nil
}
