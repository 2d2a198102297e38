package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/cyphoma/kaminari/internal/cliconfig"
	"github.com/cyphoma/kaminari/pkg/log"
	"github.com/cyphoma/kaminari/pkg/render"
	"github.com/cyphoma/kaminari/pkg/window"
	"github.com/cyphoma/kaminari/plugins/defaultswatcher"
)

const longHelp = `Compute the page links a paginator should show around the current page.

Window sizes are resolved per field as: flag or key=value argument, then the
config file and KAMINARI_* environment defaults, then the built-in defaults
(window=4, outer_window=1, decade=0). A left, right, decade_left or
decade_right of exactly 0 falls back to outer_window or decade.`

var exampleUsage = strings.TrimSpace(`
  kaminari --total 100 --page 50 --window 2 --decade 1
  kaminari total_pages=900 current_page=450 outer_window=2 --format json
  kaminari --total 100 --page 50 --config ./kaminari.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// pageFlags maps CLI flag names to option keys.
var pageFlags = []struct {
	flag  string
	key   string
	usage string
}{
	{"total", window.KeyTotalPages, "total number of pages"},
	{"page", window.KeyCurrentPage, "current page (clamped into range)"},
	{"window", window.KeyWindow, "inner window radius around the current page"},
	{"outer-window", window.KeyOuterWindow, "outer window size used when left/right are 0"},
	{"left", window.KeyLeft, "left outer window"},
	{"right", window.KeyRight, "right outer window"},
	{"decade", window.KeyDecade, "decade window size, in tens, used when decade-left/right are 0"},
	{"decade-left", window.KeyDecadeLeft, "left decade window, in tens"},
	{"decade-right", window.KeyDecadeRight, "right decade window, in tens"},
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		cfgPath   string
		format    string
		logLevel  string
		logFormat string
		watch     bool
	)
	pageValues := make(map[string]*int, len(pageFlags))

	root := &cobra.Command{
		Use:           "kaminari [key=value ...]",
		Short:         "Compute compact pagination controls",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfg, err := cliconfig.Load(cfgFile, changed)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}
			if changed["format"] {
				cfg.Format = format
			}
			if changed["log-level"] {
				cfg.LogLevel = logLevel
			}
			if changed["log-format"] {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}

			logger, err := log.NewZerologAdapter(stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return err
			}

			opts, err := requestOptions(args, pageValues, changed)
			if err != nil {
				logger.Error("invalid options", log.Err(err))
				return err
			}

			if err := window.SetDefaults(cfg.Defaults); err != nil {
				logger.Error("invalid defaults", log.Err(err))
				return err
			}
			logger.Debug("configuration",
				log.String("config", cfgFile),
				log.Any("defaults", cfg.Defaults),
				log.String("format", cfg.Format),
			)

			r := render.New(render.WithLogger(logger))
			if err := printPagination(stdout, r, opts, cfg.Format); err != nil {
				logger.Error("pagination failed", log.Err(err))
				return err
			}
			if !watch {
				return nil
			}
			return watchDefaults(cmd.Context(), stdout, logger, r, opts, cfgFile, cfg.Format)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.kaminari/config.toml)")
	for _, pf := range pageFlags {
		v := new(int)
		pageValues[pf.key] = v
		root.Flags().IntVar(v, pf.flag, 0, pf.usage)
	}
	root.Flags().StringVar(&format, "format", cliconfig.FormatText, "output format: text or json")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	root.Flags().StringVar(&logFormat, "log-format", log.FormatConsole, "log format: console or json")
	root.Flags().BoolVar(&watch, "watch", false, "re-render whenever the config file changes")

	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// requestOptions merges key=value arguments with explicitly set flags; flags
// win.
func requestOptions(args []string, pageValues map[string]*int, changed map[string]bool) (window.Options, error) {
	raw := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return window.Options{}, &window.ConfigError{Field: arg, Reason: "expected key=value"}
		}
		raw[strings.TrimSpace(key)] = value
	}
	opts, err := window.ParseOptions(raw)
	if err != nil {
		return window.Options{}, err
	}

	var fromFlags window.Options
	for _, pf := range pageFlags {
		if !changed[pf.flag] {
			continue
		}
		flagOpts, err := window.ParseOptions(map[string]string{pf.key: fmt.Sprint(*pageValues[pf.key])})
		if err != nil {
			return window.Options{}, err
		}
		fromFlags = fromFlags.Merge(flagOpts)
	}
	return opts.Merge(fromFlags), nil
}

type report struct {
	Settings window.Settings         `json:"settings"`
	Pages    []window.Classification `json:"pages"`
	Tags     []render.Tag            `json:"tags"`
}

func printPagination(w io.Writer, r *render.Renderer, opts window.Options, format string) error {
	cfg, err := window.Resolve(opts, window.CurrentDefaults())
	if err != nil {
		return err
	}
	tags := r.Render(cfg)

	if format == cliconfig.FormatJSON {
		rep := report{
			Settings: cfg.Settings(),
			Pages:    make([]window.Classification, 0),
			Tags:     tags,
		}
		for page := range cfg.Pages() {
			rep.Pages = append(rep.Pages, page.Classify())
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	_, err = fmt.Fprintln(w, render.Text(tags))
	return err
}

func watchDefaults(parent context.Context, w io.Writer, logger log.Logger, r *render.Renderer,
	opts window.Options, path, format string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := defaultswatcher.New(defaultswatcher.Config{
		Path:   path,
		Load:   cliconfig.LoadDefaults,
		Logger: logger,
		OnReload: func(window.Defaults) {
			if err := printPagination(w, r, opts, format); err != nil {
				logger.Error("pagination failed", log.Err(err))
			}
		},
	})
	if err := watcher.Start(ctx); err != nil {
		logger.Error("watch failed", log.Err(err))
		return err
	}

	<-ctx.Done()
	logger.Info("received signal, stopping...")
	return watcher.Shutdown(context.Background())
}
