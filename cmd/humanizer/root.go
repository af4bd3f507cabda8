package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"text_humanizer/internal/app"
	"text_humanizer/internal/config"
	"text_humanizer/internal/logging"
	"text_humanizer/internal/workspace"
)

var (
	cfgFile string
	dataDir string
	initErr error
)

var rootCmd = &cobra.Command{
	Use:   "humanizer",
	Short: "Rewrite machine-sounding text and score how AI-generated it looks",
	Long: `humanizer rewrites formal or machine-generated text into a more natural register,
scores text for AI-generation signals, extracts and summarises PDF and DOCX documents,
and serves all of it over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initErr
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <data-dir>/configs/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default is $HOME/"+workspace.BaseDirName+")")
	rootCmd.PersistentFlags().Bool("debug", false, "log DEBUG lines and mirror the session log to stderr")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(serveCmd, humanizeCmd, detectCmd, extractCmd, summarizeCmd, dictStatsCmd, historyCmd)
}

// initConfig prepares the data directory and layers defaults, settings.yaml and env.
func initConfig() {
	var err error
	if dataDir == "" {
		dataDir, err = workspace.EnsureDefault()
	} else {
		dataDir, err = workspace.EnsureAt(dataDir)
	}
	if err != nil {
		initErr = fmt.Errorf("prepare data directory: %w", err)
		return
	}

	v := viper.GetViper()
	config.SetDefaults(v, dataDir)
	config.BindEnv(v)

	path := cfgFile
	if path == "" {
		path = workspace.SettingsPath(dataDir)
	}
	initErr = config.ReadFile(v, path)
}

type session struct {
	app    *app.App
	logger *logging.Archive
	cfg    config.Config
	stop   func()
}

// openSession builds the application from the resolved configuration. Callers must call stop.
func openSession(ctx context.Context, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	var sinks []io.Writer
	var logFile *os.File
	if cfg.LogFile != "" {
		logFile, err = logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, logFile)
	}
	if cfg.Debug {
		sinks = append(sinks, stderr)
	}
	logger := logging.NewArchive(io.MultiWriter(sinks...), 500, cfg.Debug)

	closeLog := func() {
		if logFile != nil {
			logFile.Close()
		}
	}

	history, err := app.OpenHistory(ctx, cfg)
	if err != nil {
		logger.Log(logging.LevelWarn, "HISTORY", "history disabled", err.Error())
		history = nil
	}
	gen, err := app.NewGenerator(ctx, cfg)
	if err != nil {
		logger.Log(logging.LevelWarn, "LLM", "model unavailable", err.Error())
		gen = nil
	}

	a, err := app.New(cfg, app.WithLogger(logger), app.WithHistory(history), app.WithGenerator(gen))
	if err != nil {
		if history != nil {
			history.Close()
		}
		closeLog()
		return nil, err
	}
	return &session{
		app:    a,
		logger: logger,
		cfg:    cfg,
		stop: func() {
			a.Close()
			closeLog()
		},
	}, nil
}
