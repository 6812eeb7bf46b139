package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/curate-labs/imagemeta/internal/analysis"
	"github.com/curate-labs/imagemeta/internal/batch"
	"github.com/curate-labs/imagemeta/internal/export"
	"github.com/curate-labs/imagemeta/internal/manifest"
	"github.com/curate-labs/imagemeta/internal/models"
	"github.com/curate-labs/imagemeta/internal/scan"
	"github.com/curate-labs/imagemeta/internal/settings"
)

func newProcessCmd() *cobra.Command {
	var (
		source       string
		dest         string
		zipPath      string
		manifestPath string
		provider     string
		model        string
		language     string
		prefix       string
		suffix       string
		separator    string
		saveSettings bool
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Analyze a folder of images and export them with metadata sidecars",
		Long: `Loads every image from the source folder, runs LLM analysis over each one
sequentially, and exports the results: each image under its generated,
collision-safe name plus a markdown metadata sidecar sharing its base name.

Export goes either into a destination folder (--dest) or into a single
date-stamped zip archive (--zip).`,
		Example: `  # Describe and export into a folder
  imagemeta process --source ./photos --dest ./described

  # Export a zip archive instead, using OpenAI
  imagemeta process --source ./photos --zip ./export.zip --provider openai

  # Templated names: blog-<name>-hero.jpg
  imagemeta process --source ./photos --dest ./out --prefix blog --suffix hero`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (dest == "") == (zipPath == "") {
				return fmt.Errorf("exactly one of --dest or --zip is required")
			}
			if !scan.ValidateDirectory(source) {
				return fmt.Errorf("invalid source directory: %s", source)
			}

			s := settings.Load(settings.DefaultPath())
			if cmd.Flags().Changed("language") {
				s.Language = language
			}
			if cmd.Flags().Changed("prefix") {
				s.Prefix = prefix
			}
			if cmd.Flags().Changed("suffix") {
				s.Suffix = suffix
			}
			if cmd.Flags().Changed("separator") {
				s.Separator = separator
			}
			if saveSettings {
				if err := settings.Save(settings.DefaultPath(), s); err != nil {
					slog.Warn("Failed to persist settings", "error", err)
				}
			}

			files, err := scan.ImageFiles(source)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no images found in %s", source)
			}

			b := batch.New(s)
			for _, file := range files {
				item, err := scan.LoadItem(source, file)
				if err != nil {
					return err
				}
				if err := b.Add(item); err != nil {
					return err
				}
			}
			slog.Info("Batch loaded", "source", source, "images", b.Len())

			analyzer, err := analysis.NewAnalyzer(provider)
			if err != nil {
				return err
			}
			processor := &batch.Processor{
				Analyzer: analyzer,
				Config: analysis.Config{
					Model:    model,
					Language: s.Language,
				},
			}

			done, err := processor.ProcessAll(cmd.Context(), b)
			if err != nil {
				return err
			}

			var exported int
			if zipPath != "" {
				f, err := os.Create(zipPath)
				if err != nil {
					return fmt.Errorf("failed to create archive: %w", err)
				}
				exported, err = export.NewZipExporter().Export(f, b.Items(), s)
				if err != nil {
					f.Close()
					os.Remove(zipPath)
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to finalize archive: %w", err)
				}
			} else {
				exported, err = export.NewDirExporter(dest).Export(b.Items(), s)
				if err != nil {
					return err
				}
			}

			if manifestPath != "" {
				entries := manifest.FromItems(b.Items(), time.Now())
				if err := manifest.Write(manifestPath, entries); err != nil {
					return err
				}
				slog.Info("Manifest written", "path", manifestPath, "entries", len(entries))
			}

			fmt.Printf("Processed %d/%d images, exported %d\n", done, b.Len(), exported)
			for _, item := range b.Items() {
				if item.Status == models.StatusError {
					fmt.Printf("  failed: %s: %s\n", item.OriginalFileName, item.Error)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source folder to scan for images (required)")
	cmd.Flags().StringVar(&dest, "dest", "", "Destination folder for exported files")
	cmd.Flags().StringVar(&zipPath, "zip", "", "Write a single zip archive instead of a folder")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Also write an export manifest (.jsonl or .parquet)")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider: gemini, openai, or ollama")
	cmd.Flags().StringVar(&model, "model", "", "Model name (provider default when empty)")
	cmd.Flags().StringVar(&language, "language", "en", "Output language for generated metadata")
	cmd.Flags().StringVar(&prefix, "prefix", "", "File name prefix")
	cmd.Flags().StringVar(&suffix, "suffix", "", "File name suffix")
	cmd.Flags().StringVar(&separator, "separator", "-", "Separator between file name parts")
	cmd.Flags().BoolVar(&saveSettings, "save-settings", false, "Persist language/prefix/suffix/separator for future runs")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
