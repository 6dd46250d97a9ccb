package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bilingual-preview/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driving"
	"github.com/custodia-labs/bilingual-preview/internal/logger"
)

// version is set at build time via -ldflags "-X ...cli.version=...".
var version = "dev"

// Services injected by main.
var (
	previewService driving.PreviewService
	openSettings   SettingsOpener
)

// SettingsOpener returns the settings store backed by the file at path.
type SettingsOpener func(path string) driven.SettingsStore

// errMissingArguments is returned when -p or -f is absent.
var errMissingArguments = errors.New("arguments -p and -f are both required")

// Flag values.
var (
	showVersion bool
	projectDir  string
	inputFile   string
	configPath  string
	sanitize    bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "bilingual-preview -p <project> -f <file>",
	Short: "Generate an HTML preview of a bilingual export",
	Long: `Converts a bilingual JSON export to an HTML page that shows the
formatting of both source and target text, as well as segment metadata.
The page is written to <project>/preview/original.html.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runPreview,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&showVersion, "version", "V", false, "Show program version")
	flags.StringVarP(&projectDir, "project", "p", "", "Path to the project folder")
	flags.StringVarP(&inputFile, "file", "f", "", "Path to the bilingual JSON file")
	flags.StringVarP(&configPath, "config", "c", "", "Path to a TOML settings file")
	flags.BoolVar(&sanitize, "sanitize", false, "Sanitise segment markup before embedding it")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output to stderr")
}

// SetPreviewService injects the service used by the root command.
func SetPreviewService(svc driving.PreviewService) {
	previewService = svc
}

// SetSettingsOpener injects the constructor used for --config files.
func SetSettingsOpener(open SettingsOpener) {
	openSettings = open
}

// reportedError marks an error the service has already logged.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command and logs the error, unless the service
// already reported it.
func Execute() error {
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		logger.Error("%s", styles.DefaultStyles().Error.Render(err.Error()))
	}
	return err
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if showVersion {
		printVersion(cmd)
		return nil
	}

	if projectDir == "" || inputFile == "" {
		_ = cmd.Usage()
		return errMissingArguments
	}

	if previewService == nil {
		return errors.New("preview service not configured")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if sanitize {
		settings.Sanitize = true
	}

	result, err := previewService.Generate(cmd.Context(), driving.PreviewRequest{
		InputPath:  filepath.Clean(inputFile),
		ProjectDir: filepath.Clean(projectDir),
		Settings:   settings,
	})
	if errors.Is(err, domain.ErrInputNotFound) {
		return &reportedError{err: err}
	}
	if err != nil {
		return err
	}

	printSummary(cmd, result)
	return nil
}

// loadSettings returns the defaults, or the settings file given with --config.
func loadSettings() (domain.PreviewSettings, error) {
	if configPath == "" {
		return domain.DefaultPreviewSettings(), nil
	}
	if openSettings == nil {
		return domain.PreviewSettings{}, errors.New("settings store not configured")
	}
	store := openSettings(configPath)
	logger.Debug("reading settings from %s", store.Path())
	return store.Settings()
}

func printSummary(cmd *cobra.Command, result *driving.PreviewResult) {
	s := styles.DefaultStyles()

	cmd.Println(s.Success.Render("Preview written"))
	cmd.Printf("  %s%s\n", s.Label.Render("Title:"), s.Title.Render(result.Title))
	cmd.Printf("  %s%d\n", s.Label.Render("Segments:"), result.SegmentCount)
	cmd.Printf("  %s%s\n", s.Label.Render("Output:"), result.OutputPath)
}
