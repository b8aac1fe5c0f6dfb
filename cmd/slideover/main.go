package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/slideover-tui/slideover/internal/config"
	"github.com/slideover-tui/slideover/internal/ui"
	"github.com/slideover-tui/slideover/internal/ui/animation"
	"github.com/slideover-tui/slideover/internal/ui/slideover"
)

type options struct {
	noAnimate     bool
	flickVelocity float64
	duration      time.Duration
	showConfig    bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("slideover", flag.ContinueOnError)
	fs.BoolVar(&opts.noAnimate, "no-animate", false, "snap the card without animating")
	fs.Float64Var(&opts.flickVelocity, "flick-velocity", -1, "rows per second a release must exceed to flick the card")
	fs.DurationVar(&opts.duration, "duration", 0, "how long the card takes to settle, e.g. 300ms")
	fs.BoolVar(&opts.showConfig, "config", false, "print the config file location and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// containerOptions turns the flags that were given into overrides on top of
// cfg. Flags left at their defaults keep the config values.
func (o options) containerOptions(cfg config.SlideoverConfig) []slideover.Option {
	var opts []slideover.Option
	if o.noAnimate {
		opts = append(opts, slideover.WithAnimator(animation.Immediate{}))
	}
	if o.flickVelocity >= 0 {
		opts = append(opts, slideover.WithFlickVelocity(o.flickVelocity))
	}
	if o.duration > 0 {
		opts = append(opts, slideover.WithSpring(o.duration, cfg.SpringDamping))
	}
	return opts
}

func setupLogging() (io.Closer, error) {
	path := os.Getenv("SLIDEOVER_DEBUG")
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	return tea.LogToFile(path, "slideover")
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	path, err := config.LoadUserConfig()
	if err != nil {
		return err
	}
	if opts.showConfig {
		fmt.Println(path)
		return nil
	}
	closer, err := setupLogging()
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	log.Printf("starting with config %s", path)

	p := tea.NewProgram(ui.New(opts.containerOptions(config.Current.Slideover)...))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
