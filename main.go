package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-labyrinth/api"
	boardapi "github.com/beka-birhanu/vinom-labyrinth/api/board"
	api_i "github.com/beka-birhanu/vinom-labyrinth/api/i"
	"github.com/beka-birhanu/vinom-labyrinth/config"
	"github.com/beka-birhanu/vinom-labyrinth/infrastruture/logger"
	"github.com/beka-birhanu/vinom-labyrinth/service"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	appLogger           *logrus.Entry
	boardSessionManager i.BoardSessionManager
	boardController     api_i.Controller
	router              *api.Router
)

func initLogger() {
	if err := logger.SetLevel(config.Envs.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", config.Envs.LogLevel, err)
		os.Exit(1)
	}
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}
}

func initBoardSessionManager() {
	sessionLogger, err := logger.New("BOARD-SESSION", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Errorf("Creating board session logger: %v", err)
		os.Exit(1)
	}

	boardSessionManager, err = service.NewBoardSessionManager(&service.Config{
		DefaultMazeSize: config.Envs.MazeSize,
		Logger:          sessionLogger,
	})
	if err != nil {
		appLogger.Errorf("Creating board session manager: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Board session manager initialized")
}

func initBoardController() {
	boardController = boardapi.NewBoardController(boardSessionManager)
	appLogger.Info("Board controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Mode:        config.Envs.GinMode,
		Controllers: []api_i.Controller{boardController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	initLogger()
	initBoardSessionManager()
	initBoardController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Errorf("Starting server: %v", err)
		os.Exit(1)
	}
}
