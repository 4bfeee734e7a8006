package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/grindlemire/go-boxlayout/internal/config"
	"github.com/grindlemire/go-boxlayout/internal/debug"
	"github.com/grindlemire/go-boxlayout/internal/document"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	v          *viper.Viper
	configFile string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:           "boxlayout",
		Short:         "Lay out constraint-based box documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = debug.Initialize(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
			a.logger.Debug("configuration loaded",
				zap.String("config_file", a.v.ConfigFileUsed()),
				zap.Float64("viewport_width", cfg.Viewport.Width),
				zap.Float64("viewport_height", cfg.Viewport.Height),
				zap.Int("workers", cfg.Workers),
			)
			return nil
		},
	}
	cmd.SetVersionTemplate("boxlayout version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default is ./"+config.DefaultFile+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.Float64("width", 0, "viewport width for documents without a viewport")
	flags.Float64("height", 0, "viewport height for documents without a viewport")
	flags.StringP("format", "o", "", "output format: text or json")
	flags.Int("precision", 0, "decimal places in results")
	flags.IntP("workers", "j", 0, "documents processed concurrently")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	for key, flag := range map[string]string{
		"viewport.width":   "width",
		"viewport.height":  "height",
		"output.format":    "format",
		"output.precision": "precision",
		"workers":          "workers",
		"logger.level":     "log-level",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}

	cmd.AddCommand(newCalcCmd(a), newCheckCmd(a), newVersionCmd())
	return cmd
}

// collectDocuments expands directories into the documents they contain.
// Explicit file arguments are kept even when their extension is unknown so
// that loading reports the error.
func collectDocuments(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if p != path {
				if _, err := document.FormatFromPath(p); err != nil {
					return nil
				}
			}
			files = append(files, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collecting documents: %w", err)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no documents found")
	}
	return files, nil
}
