// Command fraudle generates fake result grids for the daily word puzzle.
//
// Modes:
//
//	fraudle [serve]                        run the HTTP API (default)
//	fraudle generate [-attempts N] [-hard] print one grid to stdout
//	fraudle levels                         list skill levels
//
// Configuration comes from the environment (and .env); see internal/config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/fraudle/internal/config"
	"github.com/robalobadob/fraudle/internal/daily"
	"github.com/robalobadob/fraudle/internal/game"
	"github.com/robalobadob/fraudle/internal/httpserver"
	"github.com/robalobadob/fraudle/internal/render"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	gen, err := cfg.Generator()
	if err != nil {
		log.Fatal().Err(err).Msg("build generator")
	}

	mode, args := "serve", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		mode, args = args[0], args[1:]
	}

	switch mode {
	case "serve", "server", "http":
		srv := httpserver.New(gen, httpserver.Options{
			ClientOrigin:   cfg.ClientOrigin,
			RequestTimeout: cfg.RequestTimeout,
		})
		log.Info().Str("port", cfg.Port).Int("alphabet", gen.Alphabet().Size()).Msg("starting fraudle")
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
	case "generate":
		if err := runGenerate(os.Stdout, gen, time.Now, args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return
			}
			log.Fatal().Err(err).Msg("generate")
		}
	case "levels":
		for _, l := range game.Levels() {
			fmt.Printf("%d  %s\n", l.Attempts, l.Label)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want serve, generate or levels)\n", mode)
		os.Exit(2)
	}
}

// runGenerate plays one session and writes the grid and share message to w.
func runGenerate(w io.Writer, gen *game.Generator, clock daily.Clock, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	attempts := fs.Int("attempts", game.DefaultAttempts, "winning attempt (2-6)")
	hard := fs.Bool("hard", false, "carry forward clues between guesses")
	answer := fs.String("answer", "", "fixed answer (testing)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target := gen.NewAnswer()
	if *answer != "" {
		a, err := gen.Alphabet().Parse(*answer)
		if err != nil {
			return err
		}
		target = a
	}

	sess, err := gen.Play(target, *attempts, *hard)
	if err != nil {
		return err
	}
	log.Debug().Int("rounds", sess.Rounds).Str("answer", sess.Answer.String()).Msg("played session")

	header := render.Header{Puzzle: clock.Today(), Attempts: sess.Attempts, HardMode: sess.HardMode}
	_, err = fmt.Fprintf(w, "%s\n\n%s\n", render.Text(sess.Results(), header), httpserver.ShareMessage)
	return err
}
