package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/crashlar/quotesforever/internal/config"
	"github.com/crashlar/quotesforever/internal/db"
	"github.com/crashlar/quotesforever/internal/errors"
	"github.com/crashlar/quotesforever/internal/ops"
	"github.com/crashlar/quotesforever/internal/seed"
	"github.com/crashlar/quotesforever/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(database *sql.DB, cfg *config.Config, logger *log.Logger) *cli.App {
	app := &cli.App{
		Name:    "quotesforever",
		Usage:   "Quote store, seeder, and web server",
		Version: Version,
		Commands: []*cli.Command{
			serveCmd(database, cfg, logger),
			seedCmd(database, cfg, logger),
			migrateCmd(database),
			randomCmd(database),
			addCmd(database),
			profileCmd(database),
			moodCmd(database),
			statsCmd(database),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// serveCmd creates the serve command.
func serveCmd(database *sql.DB, cfg *config.Config, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Usage: "Bind address (overrides config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			serveCfg := *cfg
			if bind := c.String("bind"); bind != "" {
				serveCfg.Bind = bind
			}
			if port := c.Int("port"); port != 0 {
				serveCfg.Port = port
			}

			srv := web.NewServer(database, &serveCfg, logger, Version)
			if err := web.Run(srv, logger); err != nil && err != http.ErrServerClosed {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

// seedCmd creates the seed command.
func seedCmd(database *sql.DB, cfg *config.Config, logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Populate the store from remote sources, the mood catalog, and the fallback list (appends on re-run)",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "threshold", Aliases: []string{"t"}, Usage: "Minimum fetched quotes before the fallback catalog is skipped"},
			&cli.BoolFlag{Name: "offline", Usage: "Skip remote sources entirely; use only the bundled catalogs"},
		},
		Action: func(c *cli.Context) error {
			opts := seed.Options{
				Client:            &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second},
				FallbackThreshold: cfg.FallbackThreshold,
				Logger:            logger,
			}
			if t := c.Int("threshold"); t > 0 {
				opts.FallbackThreshold = t
			}
			if c.Bool("offline") {
				opts.Sources = []seed.Source{}
			}

			report, err := seed.Run(c.Context, database, opts)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(report)
		},
	}
}

// migrateCmd creates the migrate command. Migrations are idempotent and
// also run on store open; this command exists to run them explicitly at
// deployment and report the resulting schema version.
func migrateCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply schema migrations and report the schema version",
		Action: func(_ *cli.Context) error {
			if err := db.Migrate(database); err != nil {
				return outputError(errors.NewStore(err))
			}
			version, err := db.GetUserVersion(database)
			if err != nil {
				return outputError(errors.NewStore(err))
			}
			return outputJSON(map[string]int{"schema_version": version})
		},
	}
}

// randomCmd creates the random command.
func randomCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Print one uniformly random quote",
		Action: func(c *cli.Context) error {
			output, err := ops.Random(c.Context, database)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// addCmd creates the add command.
func addCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a quote",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Usage: "Quote text"},
			&cli.StringFlag{Name: "author", Aliases: []string{"a"}, Usage: "Author name"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category label"},
			&cli.StringFlag{Name: "inspiration", Aliases: []string{"i"}, Usage: "Context or provenance note"},
		},
		Action: func(c *cli.Context) error {
			input := ops.AddQuoteInput{
				Text:     c.String("text"),
				Author:   c.String("author"),
				Category: c.String("category"),
			}
			if inspiration := c.String("inspiration"); inspiration != "" {
				input.Inspiration = &inspiration
			}

			output, err := ops.AddQuote(c.Context, database, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// profileCmd creates the profile command.
func profileCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Record personal details",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Full name"},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Email address"},
			&cli.StringFlag{Name: "phone", Usage: "Phone number"},
			&cli.StringFlag{Name: "profession", Usage: "Profession"},
			&cli.StringFlag{Name: "feedback", Usage: "Feedback or suggestions"},
			&cli.StringFlag{Name: "help-request", Usage: "What help you are looking for"},
		},
		Action: func(c *cli.Context) error {
			input := ops.AddProfileInput{
				Name:  c.String("name"),
				Email: c.String("email"),
			}
			if v := c.String("phone"); v != "" {
				input.Phone = &v
			}
			if v := c.String("profession"); v != "" {
				input.Profession = &v
			}
			if v := c.String("feedback"); v != "" {
				input.Feedback = &v
			}
			if v := c.String("help-request"); v != "" {
				input.HelpRequest = &v
			}

			output, err := ops.AddProfile(c.Context, database, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// moodCmd creates the mood command.
func moodCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "mood",
		Usage: "Get a quote matched to a mood profile",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mood", Aliases: []string{"m"}, Usage: "Mood: happy|sad|motivated|stressed|love|career|angry|confused"},
			&cli.StringFlag{Name: "gender", Aliases: []string{"g"}, Usage: "girl|boy (omit to match everything)"},
			&cli.IntFlag{Name: "age", Value: 25, Usage: "Your age"},
			&cli.StringFlag{Name: "social", Value: "balanced", Usage: "Social life: good|not good|balanced"},
			&cli.StringFlag{Name: "professional", Value: "balanced", Usage: "Professional life: good|struggling|balanced"},
		},
		Action: func(c *cli.Context) error {
			input := ops.MoodInput{
				Mood:             c.String("mood"),
				Gender:           c.String("gender"),
				Age:              c.Int("age"),
				SocialLife:       c.String("social"),
				ProfessionalLife: c.String("professional"),
			}

			output, err := ops.Mood(c.Context, database, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print row counts for all tables",
		Action: func(c *cli.Context) error {
			output, err := ops.Stats(c.Context, database)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if aErr, ok := err.(*errors.AppError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", aErr.Code, aErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
