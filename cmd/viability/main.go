package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"capital-viability/internal/cashflow"
	"capital-viability/internal/config"
	"capital-viability/internal/indicators"
	"capital-viability/internal/project"
	"capital-viability/pkg/constants"
	"capital-viability/pkg/output"
	"capital-viability/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	projectsDir := flag.String("projects-dir", "", "projects directory override")
	projectName := flag.String("project", "", "name of the project to calculate")
	createName := flag.String("create", "", "create a new project with this name")
	description := flag.String("description", "", "description for the created project")
	list := flag.Bool("list", false, "list available projects")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, xlsx, pdf")
	outputPath := flag.String("output", "", "output file path for xlsx and pdf formats")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	warnings, err := conf.ValidateConfiguration()
	if err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *projectsDir == "" {
		*projectsDir = conf.ProjectsDir
	}
	manager := project.NewManager(*projectsDir, logger)

	if *list {
		projects, err := manager.List()
		if err != nil {
			logger.Fatal("failed to list projects",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		for _, meta := range projects {
			fmt.Printf("%s - %s\n", meta.Name, meta.Description)
		}
		return
	}

	if *createName != "" {
		if err := manager.Create(*createName, *description, conf.Policy); err != nil {
			logger.Fatal("failed to create project",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("created project %s\n", *createName)
		return
	}

	if *projectName == "" {
		logger.Fatal("no project specified; use -project, -create, or -list",
			zap.String("op", "main"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	proj, err := manager.Load(*projectName)
	if err != nil {
		logger.Fatal("failed to load project",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	entries := cashflow.Build(proj.Investments, proj.Costs, proj.Revenues, proj.Policy)
	engine := indicators.NewEngine(logger)
	snapshot := engine.Snapshot(entries, proj.Policy.DiscountRate())

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, snapshot)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, snapshot)
	case constants.OutputFormatXLSX:
		path := *outputPath
		if path == "" {
			path = *projectName + "-results.xlsx"
		}
		data, err := output.BuildResultsXLSX(snapshot)
		if err != nil {
			logger.Fatal("failed to build results workbook",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			logger.Fatal("failed to write results workbook",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("wrote %s\n", path)
	case constants.OutputFormatPDF:
		path := *outputPath
		if path == "" {
			path = *projectName + "-report.pdf"
		}
		data, err := output.BuildResultsPDF(*projectName, snapshot)
		if err != nil {
			logger.Fatal("failed to build report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			logger.Fatal("failed to write report",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
