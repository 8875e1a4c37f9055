// cardgen is the reference collaborator for the composition engine: it
// resolves image files and episode metadata from flags, builds one
// RenderRequest and persists the finished card.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/CollinHeist/titlecard-engine/engine"
	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

// extrasFlag collects repeatable -extra key=value pairs.
type extrasFlag map[string]string

func (f extrasFlag) String() string { return fmt.Sprintf("%v", map[string]string(f)) }

func (f extrasFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	f[key] = val
	return nil
}

func main() {
	// Optional .env for asset-directory defaults; absence is fine.
	_ = godotenv.Load()

	extras := extrasFlag{}
	source := flag.String("source", "", "source still image (png/jpg)")
	logoPath := flag.String("logo", "", "series logo image with transparency")
	title := flag.String("title", "", "episode title text")
	season := flag.String("season", "", "season text; empty hides the season")
	episode := flag.String("episode", "", "episode text")
	cardType := flag.String("type", string(variant.Standard), "card type identifier")
	watched := flag.Bool("watched", false, "mark the episode as watched")
	out := flag.String("out", "card.png", "output file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Var(extras, "extra", "style option override as key=value (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if err := run(*source, *logoPath, *title, *season, *episode, *cardType, *watched, *out, extras, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(source, logoPath, title, season, episode, cardType string, watched bool, out string, extras map[string]string, logger *slog.Logger) error {
	req := &engine.RenderRequest{
		Title:       title,
		SeasonText:  season,
		EpisodeText: episode,
		CardType:    variant.ID(cardType),
		Extras:      extras,
	}
	if watched {
		req.Watched = engine.Watched
	} else {
		req.Watched = engine.Unwatched
	}

	var err error
	if source != "" {
		if req.Source, err = loadImage(source); err != nil {
			return &engine.AssetLoadError{Asset: "source", Err: err}
		}
	}
	if logoPath != "" {
		if req.Logo, err = loadImage(logoPath); err != nil {
			return &engine.AssetLoadError{Asset: "logo", Err: err}
		}
	}
	if _, ok := extras["font.file"]; !ok {
		if font := os.Getenv("CARDGEN_FONT"); font != "" {
			extras["font.file"] = font
		}
	}

	eng := engine.New()
	eng.Logger = slogAdapter{logger}

	started := time.Now()
	card, err := eng.Render(req)
	if err != nil {
		return err
	}
	if err := imaging.Save(card, out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	logger.Info("card written", "file", out, "type", cardType, "elapsed", time.Since(started))
	return nil
}

func loadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// slogAdapter feeds the engine's structural logger into slog.
type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Infof(component, format string, args ...interface{}) {
	a.l.Info(fmt.Sprintf(format, args...), "component", component)
}

func (a slogAdapter) Errorf(component, format string, args ...interface{}) {
	a.l.Error(fmt.Sprintf(format, args...), "component", component)
}
