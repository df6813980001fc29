package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/bnetscraper/pkg/bnetscraper"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/httpcache"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/portrait"
	"github.com/codeGROOVE-dev/bnetscraper/pkg/starcraft2"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("usage")

// flags are shared by every subcommand.
//
//nolint:govet // fieldalignment: intentional layout for readability
type flags struct {
	debug       bool
	cache       bool
	cacheTTL    time.Duration
	timeout     time.Duration
	rateLimit   time.Duration
	retries     uint
	concurrency int
	gateway     string
	subregion   int

	env    *settings
	logger *slog.Logger
	closer func()
}

func newFlags() *flags {
	return &flags{closer: func() {}}
}

// close releases the cache opened by options, if any.
func (f *flags) close() {
	f.closer()
}

func newRootCmd(f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:           "bnetscraper",
		Short:         "bnetscraper scrapes StarCraft II profiles from the Battle.net armory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return f.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&f.debug, "debug", "v", false, "enable debug logging")
	pf.BoolVar(&f.cache, "cache", false, "cache HTTP responses on disk")
	pf.DurationVar(&f.cacheTTL, "cache-ttl", defaultCacheTTL, "cache time-to-live")
	pf.DurationVar(&f.timeout, "timeout", httpcache.DefaultTimeout, "per-request timeout")
	pf.DurationVar(&f.rateLimit, "rate-limit", 0, "minimum delay between requests to one host")
	pf.UintVar(&f.retries, "retries", 1, "total attempts per page fetch")
	pf.IntVar(&f.concurrency, "concurrency", 1, "league pages fetched at once by full")
	pf.StringVar(&f.gateway, "gateway", "", "gateway for field references (default us)")
	pf.IntVar(&f.subregion, "subregion", starcraft2.DefaultSubregion, "subregion for field references")

	root.AddCommand(
		pageCmd(f, starcraft2.PageProfile, "profile <url | bnet-id name>", "Scrape a profile page and its league links"),
		pageCmd(f, starcraft2.PageAchievements, "achievements <url | bnet-id name>", "Scrape an achievements page"),
		pageCmd(f, starcraft2.PageMatches, "matches <url | bnet-id name>", "Scrape a match history page"),
		leagueCmd(f),
		fullCmd(f),
		statusCmd(f),
		validCmd(f),
		portraitCmd(),
	)
	return root
}

// setup applies .env defaults to flags the user did not set, then builds the
// logger and optional cache.
func (f *flags) setup(cmd *cobra.Command) error {
	env, err := loadSettings()
	if err != nil {
		return err
	}
	f.env = env

	pf := cmd.Flags()
	if !pf.Changed("cache-ttl") {
		f.cacheTTL = env.CacheTTL
	}
	if !pf.Changed("retries") {
		f.retries = env.Retries
	}
	if !pf.Changed("gateway") {
		f.gateway = env.Gateway
	}

	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	f.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	if !env.EnvFile {
		f.logger.Debug(".env file not found, using environment variables or defaults")
	}
	return nil
}

// options builds the scrape options, opening the disk cache when requested.
func (f *flags) options() []bnetscraper.Option {
	opts := []bnetscraper.Option{
		bnetscraper.WithLogger(f.logger),
		bnetscraper.WithTimeout(f.timeout),
		bnetscraper.WithRetries(f.retries),
		bnetscraper.WithRateLimit(f.rateLimit),
		bnetscraper.WithConcurrency(f.concurrency),
	}
	if !f.cache {
		return opts
	}

	var httpCache *httpcache.Cache
	var err error
	if f.env != nil && f.env.CacheDir != "" {
		httpCache, err = httpcache.NewWithPath(f.cacheTTL, f.env.CacheDir)
	} else {
		httpCache, err = httpcache.New(f.cacheTTL)
	}
	if err != nil {
		f.logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		return opts
	}
	f.closer = func() {
		if err := httpCache.Close(); err != nil {
			f.logger.Warn("failed to close cache", "error", err)
		}
	}
	f.logger.Debug("HTTP cache initialized", "ttl", f.cacheTTL.String())
	return append(opts, bnetscraper.WithHTTPCache(httpCache))
}

// ref reads a profile URL or a bnet ID and name from args.
func (f *flags) ref(args []string) (starcraft2.Ref, error) {
	switch len(args) {
	case 1:
		if !isURL(args[0]) {
			return starcraft2.Ref{}, fmt.Errorf("%w: %q is not a profile URL", errUsage, args[0])
		}
		return starcraft2.Ref{URL: args[0]}, nil
	case 2:
		return starcraft2.Ref{BnetID: args[0], Name: args[1], Gateway: f.gateway, Subregion: f.subregion}, nil
	default:
		return starcraft2.Ref{}, fmt.Errorf("%w: want a profile URL or a bnet ID and name", errUsage)
	}
}

func pageCmd(f *flags, page starcraft2.Page, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := f.ref(args)
			if err != nil {
				return err
			}
			v, err := bnetscraper.Scrape(cmd.Context(), page, starcraft2.LeagueRef{Ref: ref}, f.options()...)
			if err != nil {
				return err
			}
			return outputJSON(v)
		},
	}
}

func leagueCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "league <league-url | bnet-id name league-id>",
		Short: "Scrape a league page",
		Args:  leagueArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ref starcraft2.LeagueRef
			if len(args) == 3 {
				r, err := f.ref(args[:2])
				if err != nil {
					return err
				}
				ref = starcraft2.LeagueRef{Ref: r, LeagueID: args[2]}
			} else {
				r, err := f.ref(args)
				if err != nil {
					return err
				}
				ref = starcraft2.LeagueRef{Ref: r}
			}
			v, err := bnetscraper.Scrape(cmd.Context(), starcraft2.PageLeague, ref, f.options()...)
			if err != nil {
				return err
			}
			return outputJSON(v)
		},
	}
}

func leagueArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("%w: want a league URL or a bnet ID, name and league ID", errUsage)
	}
	return nil
}

func fullCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "full <bnet-id> <name>",
		Short: "Scrape a profile and every league it links to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := bnetscraper.FullProfileScrape(cmd.Context(), args[0], args[1], f.gateway, f.options()...)
			if err != nil {
				return err
			}
			return outputJSON(p)
		},
	}
}

func statusCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "status [gateway]",
		Short: "Show server status as reported by a gateway",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway := f.gateway
			if len(args) == 1 {
				gateway = args[0]
			}
			ref := starcraft2.LeagueRef{Ref: starcraft2.Ref{Gateway: gateway}}
			v, err := bnetscraper.Scrape(cmd.Context(), starcraft2.PageStatus, ref, f.options()...)
			if err != nil {
				return err
			}
			return outputJSON(v)
		},
	}
}

func validCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "valid <url | bnet-id name>",
		Short: "Check that a profile page exists",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := f.ref(args)
			if err != nil {
				return err
			}
			ok, err := bnetscraper.ValidProfile(cmd.Context(), ref, f.options()...)
			if err != nil {
				return err
			}
			return outputJSON(map[string]bool{"valid": ok})
		},
	}
}

func portraitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portrait <name | sheet row col>",
		Short: "Look up a portrait by name or sprite coordinate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if c, ok := coordinateArgs(args); ok {
				name, found := portrait.Name(c)
				if !found {
					return fmt.Errorf("no portrait at %+v", c)
				}
				return outputJSON(map[string]any{"name": name, "coordinate": c})
			}
			name := strings.Join(args, " ")
			c, ok := portrait.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown portrait %q", name)
			}
			return outputJSON(map[string]any{"name": name, "coordinate": c})
		},
	}
}

// coordinateArgs parses "sheet row col".
func coordinateArgs(args []string) (portrait.Coordinate, bool) {
	if len(args) != 3 {
		return portrait.Coordinate{}, false
	}
	var nums [3]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return portrait.Coordinate{}, false
		}
		nums[i] = n
	}
	return portrait.Coordinate{Sheet: nums[0], Row: nums[1], Col: nums[2]}, true
}

func isURL(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "http")
}
