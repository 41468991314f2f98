package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"flint/internal/util"
)

var (
	// Version is the current version of the flint binary loaded from the VERSION file in the root of the project.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// logging
	logLevel string
	logFile  string
	// config vars
	configFile string
	dbDriver   string
	dbConn     string
	dbTable    string
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	// runtime config
	flag.StringVar(&configFile, "config", "", "Load configuration from a TOML file")
	flag.StringVar(&dbDriver, "db-driver", "", "SQL driver for the dbmap demo: sqlite3, mysql or postgres")
	flag.StringVar(&dbConn, "db-conn", "", "Connection string for the dbmap demo")
	flag.StringVar(&dbTable, "db-table", "flint_pairs", "Backing table for the dbmap demo")
	// log config
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {

	flag.Parse()

	config := util.Configuration{
		Version:   Version,
		BuildDate: BuildDate,
		Commit:    Commit,
		LogLevel:  logLevel,
		LogFile:   logFile,
		DBDriver:  dbDriver,
		DBConn:    dbConn,
		DBTable:   dbTable,
	}

	if configFile != "" {
		if err := util.LoadConfiguration(configFile, &config); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config '%s': %v\n", configFile, err)
			os.Exit(1)
		}
		// explicit flags win over file values
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "log-level":
				config.LogLevel = logLevel
			case "log-file":
				config.LogFile = logFile
			case "db-driver":
				config.DBDriver = dbDriver
			case "db-conn":
				config.DBConn = dbConn
			case "db-table":
				config.DBTable = dbTable
			}
		})
	}

	// Creates a new Logger that uses a JSONHandler to write to standard output
	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevelFromString(config.LogLevel),
	}
	logWriter := configureLogWriter(config.LogFile)
	defaultLogger := slog.New(slog.NewJSONHandler(logWriter, loggerOptions))
	slog.SetDefault(defaultLogger)

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	if err := runDemo(os.Stdout, config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func configureLogWriter(logFile string) *os.File {
	var logWriter *os.File
	var err error
	if logFile != "" {
		// Create parent directories if they don't exist
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for '%s': %v; falling back to stderr\n", logFile, err)
			return os.Stderr
		}
		logWriter, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", logFile, err)
			logWriter = os.Stderr
		}
	} else {
		logWriter = os.Stderr
	}
	return logWriter
}

func printVersion() {

	fmt.Printf("flint version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: flint [options]

Options:
  -config <path>     Load configuration from a TOML file.
  -db-driver <name>  SQL driver for the dbmap demo: sqlite3, mysql or postgres.
  -db-conn <dsn>     Connection string for the dbmap demo.
  -db-table <name>   Backing table for the dbmap demo. Default is 'flint_pairs'.
  -help              Display this help information and exit.
  -version           Display version information and exit.
  -log-level <level> Set the log level: debug, info, warn, error. Default is 'error'.
  -log-file <path>   Specify a log file to write logs. Default is stderr.

Details:
Flint is the subscript-access runtime for compiled programs. The demo driver
walks the container kinds through lookup, assignment and deletion.

Examples:
  flint                                      Run the in-memory demo
  flint -db-driver=sqlite3 -db-conn=:memory: Include the SQL-backed container
  flint -log-level=debug                     Start with debug logging enabled

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
