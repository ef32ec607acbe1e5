package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/a-maze-ing/config"
	"github.com/beka-birhanu/a-maze-ing/infrastruture/writer"
	"github.com/beka-birhanu/a-maze-ing/logger"
	"github.com/beka-birhanu/a-maze-ing/service"
	"github.com/beka-birhanu/a-maze-ing/ui"
)

// Global variables for dependencies
var (
	appLogger  logger.Logger
	cfg        *config.Config
	mazeSvc    *service.MazeService
	fileWriter *writer.FileWriter
)

func initLogger() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating logger: %v\n", err)
		os.Exit(1)
	}
}

func initConfig(path string) {
	var err error
	cfg, err = config.Load(path)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading config %s: %v", path, err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Config loaded: %dx%d maze, entry %s, exit %s, perfect=%t",
		cfg.Width, cfg.Height, cfg.Entry, cfg.Exit, cfg.Perfect))
}

func initMazeService() {
	var err error
	mazeSvc, err = service.NewMazeService(cfg, appLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initFileWriter() {
	var err error
	fileWriter, err = writer.New(appLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating file writer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("File writer initialized")
}

func main() {
	once := flag.Bool("once", false, "generate a single maze, print it and exit without the interactive session")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-once] config.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	initLogger()
	initConfig(flag.Arg(0))
	initMazeService()
	initFileWriter()

	// Each regeneration advances the seed so the interactive session shows
	// fresh mazes; the first run always uses the configured seed.
	seed := cfg.Seed
	regenerate := func() (ui.State, error) {
		result, err := mazeSvc.GenerateSeeded(seed)
		if err != nil {
			return ui.State{}, err
		}
		seed = seed*1103515245 + 12345
		if err := fileWriter.WriteFile(cfg.OutputFile, result.Maze, result.PathString); err != nil {
			return ui.State{}, err
		}
		return ui.State{
			Maze:      result.Maze,
			Path:      result.PathString,
			Forbidden: result.Forbidden,
		}, nil
	}

	if *once {
		state, err := regenerate()
		if err != nil {
			appLogger.Error(err.Error())
			os.Exit(1)
		}
		drawing, err := ui.Render(state.Maze, ui.Options{Path: state.Path, Forbidden: state.Forbidden})
		if err != nil {
			appLogger.Error(err.Error())
			os.Exit(1)
		}
		fmt.Print(drawing)
		return
	}

	viewer, err := ui.NewViewer(regenerate, appLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating viewer: %v", err))
		os.Exit(1)
	}
	if err := viewer.Run(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
