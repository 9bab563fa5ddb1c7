package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mordilloSan/go-filelogger/internal/config"
	"github.com/mordilloSan/go-filelogger/logger"

	"golang.org/x/term"
)

type cliArgs struct {
	configPath string
	envPath    string
	name       string
	file       string
	mode       string
	level      string
	console    bool
	banner     bool
	color      string
	at         string
}

func parseCLIArgs() *cliArgs {
	args := &cliArgs{}

	flag.StringVar(&args.configPath, "config", "", "Load settings from a .yaml, .json, .json5 or .toml file.")
	flag.StringVar(&args.envPath, "env", ".env", "Load LOGGER_* variables from this .env file if it exists.")
	flag.StringVar(&args.name, "name", "go-filelogger", "Logger name written on every line.")
	flag.StringVar(&args.file, "file", "", "Log file path; empty disables file logging.")
	flag.StringVar(&args.mode, "mode", "w", `File mode: "w" truncates, "a" appends.`)
	flag.StringVar(&args.level, "level", "DEBUG", "Minimum level written to the file.")
	flag.BoolVar(&args.console, "console", true, "Print every message to stdout.")
	flag.BoolVar(&args.banner, "banner", false, "Write a creation banner when the file is created or truncated.")
	flag.StringVar(&args.color, "color", "auto", "Colorize console output: auto, always or never.")
	flag.StringVar(&args.at, "at", "INFO", "Level for messages given as arguments.")
	flag.Parse()

	return args
}

// loadConfig applies, in order: defaults, config file, environment, explicit flags.
func loadConfig(args *cliArgs) (logger.Config, error) {
	if err := config.LoadDotEnv(args.envPath); err != nil {
		return logger.Config{}, err
	}

	section := config.Section{Name: args.name}
	if args.configPath != "" {
		fc, err := config.LoadFile(args.configPath)
		if err != nil {
			return logger.Config{}, err
		}
		section = fc.Logger
		if section.Name == "" {
			section.Name = args.name
		}
	}
	if err := config.ApplyEnv(&section); err != nil {
		return logger.Config{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			section.Name = args.name
		case "file":
			section.FileName = &args.file
		case "mode":
			section.FileMode = args.mode
		case "level":
			section.LoggingLevel = args.level
		case "console":
			section.ConsoleOutput = &args.console
		case "banner":
			section.Banner = &args.banner
		}
	})

	cfg, err := section.ToLoggerConfig()
	if err != nil {
		return cfg, err
	}

	switch args.color {
	case "always":
		cfg.Colorize = true
	case "never":
		cfg.Colorize = false
	case "auto":
		if section.Colorize == nil {
			cfg.Colorize = term.IsTerminal(int(os.Stdout.Fd()))
		}
	default:
		return cfg, &logger.ConfigError{Field: "color", Value: args.color, Reason: `it has to be "auto", "always" or "never"`}
	}
	return cfg, nil
}

// Usage: ./go-filelogger [flags] [message...]
// Example: ./go-filelogger -file app.log -level WARNING -at ERROR "disk almost full"
func main() {
	args := parseCLIArgs()

	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		level, err := logger.ParseLevel(args.at)
		if err != nil || level == logger.NoLevel {
			fmt.Fprintf(os.Stderr, "invalid -at level %q\n", args.at)
			os.Exit(2)
		}
		if err := log.Log(level, strings.Join(flag.Args(), " ")); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := demo(log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demo exercises every level and a wrapped failing call, then prints the summary.
func demo(log *logger.Logger) error {
	if err := errors.Join(
		log.Debug("hallo"),
		log.Info("das"),
		log.Warning("ist"),
		log.Error("ein"),
		log.Critical("test"),
	); err != nil {
		return err
	}

	divide := logger.Wrap(log, func(d [2]int) (int, error) {
		if d[1] == 0 {
			return 0, errors.New("division by zero")
		}
		return d[0] / d[1], nil
	}, logger.WithName("divide"), logger.WithDoc("divides the first number by the second"))

	if q, err := divide([2]int{10, 2}); err == nil {
		log.Infof("10 / 2 = %d", q)
	}
	if _, err := divide([2]int{1, 0}); err != nil {
		log.Infof("caller still sees: %v", err)
	}

	fmt.Print(log)
	fmt.Printf("%#v\n", log)
	return nil
}
