// file: cmd/root.go
// version: 1.4.0
// guid: 29fa409f-3f81-41fe-aed3-63206bef0745

package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/audiobiblio/tagsuggest/internal/config"
	"github.com/audiobiblio/tagsuggest/internal/extractor"
	"github.com/audiobiblio/tagsuggest/internal/playlist"
	"github.com/audiobiblio/tagsuggest/internal/report"
	"github.com/audiobiblio/tagsuggest/internal/scanner"
	"github.com/audiobiblio/tagsuggest/internal/suggest"
)

var cfgFile string
var rootDir string
var suggestionsFile string
var outputFormat string
var defaultGenre string
var dryRun bool
var force bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tagsuggest",
	Short: "Suggest audiobook tags without touching the files",
	Long: `Tagsuggest scans audiobook folders, reads the stored tags, and derives
suggested values for title, author, narrator, genre, track order, and more.

Suggestions are written to a review sidecar next to the audio files; the
audio files themselves are never modified.`,
}

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest [folder...]",
	Short: "Generate tag suggestions for audiobook folders",
	Long: `Scan the given folders (or the configured root directory) and write a
suggestion sidecar into each folder that contains audio files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := resolveFolders(args)
		if err != nil {
			return err
		}
		if len(folders) == 0 {
			return fmt.Errorf("no audio folders found")
		}

		totalFiles := 0
		for _, folder := range folders {
			totalFiles += len(folder.Files)
		}
		fmt.Printf("Found %d audio folders (%d files)\n", len(folders), totalFiles)
		scan := report.NewScanInfo()
		bar := progressbar.Default(int64(totalFiles))

		written := 0
		skipped := 0
		for _, folder := range folders {
			if !force && report.SidecarExists(folder.Path, config.AppConfig.SuggestionsFile) {
				skipped++
				bar.Add(len(folder.Files))
				continue
			}

			doc, err := buildDocument(folder, scan, func() { bar.Add(1) })
			if err != nil {
				fmt.Printf("Warning: skipping %s: %v\n", folder.Path, err)
				continue
			}

			if dryRun {
				report.Render(os.Stdout, doc.Suggestion)
			} else {
				if err := report.WriteSidecar(folder.Path, config.AppConfig.SuggestionsFile, config.AppConfig.OutputFormat, doc); err != nil {
					return fmt.Errorf("failed to write sidecar for %s: %w", folder.Path, err)
				}
				written++
			}
		}

		if dryRun {
			fmt.Printf("Dry run: no sidecars written (%d folders skipped)\n", skipped)
		} else {
			fmt.Printf("Wrote %d sidecars, skipped %d existing\n", written, skipped)
		}
		return nil
	},
}

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <folder>",
	Short: "Show the suggestion table for one folder",
	Long:  `Build suggestions for a single folder and print the review table without writing anything.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := scanner.FindAudioFolders(args[0])
		if err != nil {
			return fmt.Errorf("scan error: %w", err)
		}
		if len(folders) == 0 {
			return fmt.Errorf("no audio files under %s", args[0])
		}

		scan := report.NewScanInfo()
		for _, folder := range folders {
			doc, err := buildDocument(folder, scan, nil)
			if err != nil {
				fmt.Printf("Warning: skipping %s: %v\n", folder.Path, err)
				continue
			}
			report.Render(os.Stdout, doc.Suggestion)
		}
		return nil
	},
}

// resolveFolders expands the command arguments (or the configured root)
// into the set of audio folders to process.
func resolveFolders(args []string) ([]scanner.Folder, error) {
	roots := args
	if len(roots) == 0 {
		if config.AppConfig.RootDir == "" {
			return nil, fmt.Errorf("root directory not specified")
		}
		roots = []string{config.AppConfig.RootDir}
	}

	var folders []scanner.Folder
	for _, root := range roots {
		found, err := scanner.FindAudioFolders(root)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		folders = append(folders, found...)
	}
	return folders, nil
}

// buildDocument runs the pipeline for one folder: read tags, parse the
// playlist if present, and assemble the suggestion document. progress
// is forwarded to the extractor, one tick per file.
func buildDocument(folder scanner.Folder, scan report.ScanInfo, progress func()) (report.Document, error) {
	records, errs := extractor.ReadFolder(folder.Files, progress)
	for _, err := range errs {
		fmt.Printf("Warning: %v\n", err)
	}
	if len(records) == 0 {
		return report.Document{}, fmt.Errorf("no readable audio files")
	}

	entries, err := playlist.ForFolder(folder.Path)
	if err != nil {
		fmt.Printf("Warning: ignoring playlist in %s: %v\n", folder.Path, err)
		entries = nil
	}

	fs := suggest.BuildFolderSuggestion(folder.Path, records, entries, suggest.BuildOptions{
		DefaultGenre: config.AppConfig.DefaultGenre,
	})
	return report.Document{Scan: scan, Suggestion: fs}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tagsuggest.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "root directory containing audiobooks")
	rootCmd.PersistentFlags().StringVar(&suggestionsFile, "suggestions-file", "_tags_suggestions.json", "sidecar filename written into each folder")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "json", "sidecar format: json (default) or yaml")
	rootCmd.PersistentFlags().StringVar(&defaultGenre, "default-genre", "", "genre used when no language can be inferred")

	viper.BindPFlag("root_dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("suggestions_file", rootCmd.PersistentFlags().Lookup("suggestions-file"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("default_genre", rootCmd.PersistentFlags().Lookup("default-genre"))

	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(inspectCmd)

	suggestCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print review tables instead of writing sidecars")
	suggestCmd.Flags().BoolVar(&force, "force", false, "rebuild sidecars even where one already exists")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tagsuggest")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}
