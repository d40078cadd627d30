package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"rebind/pkg/game/config"
	"rebind/pkg/game/gameplay"
	"rebind/pkg/game/renderer"
	"rebind/pkg/game/renderer/ebiten"
	"rebind/pkg/game/renderer/tui"
)

func initGettext(lang string) {
	gotext.Configure("locales", lang, "default")
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist. A file that exists but is broken is still an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Config %s not found, using defaults\n", path)
		return config.Default(), nil
	}
	return cfg, err
}

// initLogging sends the log to the configured file. The terminal host owns
// stdout and stderr while running, so its log is discarded otherwise.
func initLogging(cfg *config.Config) (io.Closer, error) {
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return f, nil
	}
	if cfg.Renderer == config.RendererTUI {
		log.SetOutput(io.Discard)
	}
	return io.NopCloser(nil), nil
}

func selectRenderer(cfg *config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererEbiten {
		return ebiten.New(cfg)
	}
	return tui.New(cfg)
}

func main() {
	configPath := flag.String("config", "rebind.yaml", "path to the YAML config file")
	rendererName := flag.String("renderer", "", "host to run: tui or ebiten (overrides the config)")
	lang := flag.String("lang", "", "message catalogue language, e.g. de_DE (overrides the config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}
	if *lang != "" {
		cfg.Language = *lang
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	config.Set(cfg)

	logFile, err := initLogging(cfg)
	if err != nil {
		log.Fatalf("Error opening log file: %v", err)
	}
	defer logFile.Close()

	initGettext(cfg.Language)

	s := gameplay.NewSession(cfg.InputOptions()...)
	s.Router.SetDeadZone(cfg.Gamepad.DeadZone)
	if err := s.Console.BindAll(cfg.Bindings); err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring bad bindings in %s: %v\n", *configPath, err)
		log.Printf("Ignoring bad bindings: %v", err)
	}
	log.Printf("Starting %s host, axis scale %.0f ms", cfg.Renderer, cfg.Axis.Scale)

	renderer.SetRenderer(selectRenderer(cfg))
	renderer.Init()
	if err := renderer.Run(s); err != nil {
		log.Fatalf("Error running %s host: %v", cfg.Renderer, err)
	}
}
