package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/akyairhashvil/countdial/internal/countdown"
	"github.com/akyairhashvil/countdial/internal/database"
	"github.com/akyairhashvil/countdial/internal/dial"
	"github.com/akyairhashvil/countdial/internal/models"
	"github.com/akyairhashvil/countdial/internal/tui"
	"github.com/akyairhashvil/countdial/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type options struct {
	configPath string
	minutes    int
	report     bool
	reset      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.IntVar(&opts.minutes, "minutes", -1, "run a countdown without the dial, printing each minute (default: the last countdown's start)")
	fs.BoolVar(&opts.report, "report", false, "write a PDF countdown report and exit")
	fs.BoolVar(&opts.reset, "reset", false, "clear the saved dial state and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	minutesSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "minutes" {
			minutesSet = true
		}
	})
	if minutesSet && opts.minutes < 0 {
		return opts, fmt.Errorf("-minutes must not be negative, got %d", opts.minutes)
	}
	if opts.minutes > dial.MinutesPerTurn {
		return opts, fmt.Errorf("-minutes must be at most %d", dial.MinutesPerTurn)
	}
	return opts, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd())))
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, interactive bool) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(ctx, opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	util.SetLogLevel(util.ParseLogLevel(cfg.LogLevel))

	if err := util.EnsureParentDir(cfg.DBPath); err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer db.Close()

	if n, err := db.InterruptActiveCountdowns(ctx, time.Now()); err != nil {
		util.LogError("Interrupt stale countdowns", err)
	} else if n > 0 {
		util.Logf("marked %d countdown(s) from a previous run as interrupted", n)
	}

	switch {
	case opts.reset:
		if err := db.ClearDialState(ctx); err != nil {
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "Dial state cleared.")
		return 0
	case opts.report:
		path, err := tui.GeneratePDFReport(ctx, db, cfg.ReportsDir, time.Now())
		if err != nil {
			fmt.Fprintf(stderr, "Error generating PDF: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "PDF Report generated: %s\n", path)
		return 0
	case opts.minutes >= 0 || !interactive:
		minutes, angle := opts.minutes, dial.AngleForMinutes(opts.minutes)
		if minutes < 0 {
			minutes, angle = lastSetting(ctx, db)
		}
		if err := runHeadless(ctx, db, stdout, minutes, angle, cfg.TickInterval); err != nil {
			fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runTUI(ctx, db, cfg); err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func runTUI(ctx context.Context, db *database.Database, cfg *config.Config) error {
	if err := util.EnsureParentDir(cfg.LogFile); err != nil {
		return err
	}
	f, err := tea.LogToFile(cfg.LogFile, config.AppName)
	if err != nil {
		return err
	}
	defer f.Close()

	model := tui.NewDialModel(ctx, db, tui.Options{
		TickInterval: cfg.TickInterval,
		TiltOffset:   cfg.TiltOffset,
		Theme:        cfg.Theme,
		ReportsDir:   cfg.ReportsDir,
	})
	p := tea.NewProgram(model, tea.WithMouseCellMotion(), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// lastSetting is what the dial was last set to, for headless runs without
// -minutes: the newest countdown in the history, else the saved dial angle.
// A finished countdown leaves the saved angle at zero, so history comes first.
func lastSetting(ctx context.Context, db *database.Database) (minutes int, angle float64) {
	recs, err := db.ListCountdowns(ctx, 1)
	if err != nil {
		util.LogError("List countdowns", err)
	} else if len(recs) > 0 {
		return recs[0].StartMinutes, recs[0].StartAngle
	}

	state, ok, err := db.LoadDialState(ctx)
	if err != nil {
		util.LogError("Load dial state", err)
		return 0, 0
	}
	if !ok {
		return 0, 0
	}
	angle = dial.Normalize(state.BaseAngle)
	return dial.MinutesForAngle(angle), angle
}

// runHeadless prints each remaining minute and records the countdown. A
// cancelled ctx ends it as interrupted.
func runHeadless(ctx context.Context, db *database.Database, out io.Writer, minutes int, angle float64, interval time.Duration) error {
	id, err := db.StartCountdown(ctx, minutes, angle, time.Now())
	if err != nil {
		return err
	}
	remaining := minutes
	for v := range countdown.Run(ctx, minutes, countdown.WithInterval(interval)) {
		remaining = v
		fmt.Fprintln(out, v)
		if v > 0 {
			util.LogError("Update countdown", db.UpdateCountdownRemaining(ctx, id, v))
		}
	}

	status := models.CountdownCompleted
	if remaining > 0 {
		status = models.CountdownInterrupted
	}
	// ctx may already be cancelled; the final write must still land.
	if err := db.FinishCountdown(context.WithoutCancel(ctx), id, status, remaining, time.Now()); err != nil {
		return err
	}
	util.Logf("countdown %s %s with %d min left", id, status, remaining)
	return nil
}
