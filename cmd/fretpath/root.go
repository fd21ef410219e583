package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fretpath/arrangement"
	"github.com/katalvlaran/fretpath/internal/config"
	"github.com/katalvlaran/fretpath/notation"
	"github.com/katalvlaran/fretpath/tab"
)

// newRootCmd wires the command tree to a private viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	root := &cobra.Command{
		Use:           "fretpath [file]",
		Short:         "Find the easiest guitar fingerings for a melody",
		Long:          "fretpath reads one beat per line (pitches, blank line for a rest, dashes for a bar line) and prints the least difficult fingerings as tabs.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfigFile(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArrange(cmd, v, args)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .fretpath.toml in . or $HOME)")
	pf.String("tunings-file", "", "TOML file with custom [tunings]")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	f := root.Flags()
	f.StringP("tuning", "t", "standard", "tuning preset or custom tuning name")
	f.Int("frets", 18, "number of frets")
	f.Int("capo", 0, "capo position")
	f.IntP("count", "n", 3, "number of arrangements (1-20)")
	f.Int("width", tab.DefaultWidth, "tab row width")
	f.Int("padding", tab.DefaultPadding, "dashes between tab columns")
	f.Int("playback", -1, "mark this rest/playable column (0-based), -1 for none")
	f.Int("workers", 1, "goroutines for candidate generation")
	f.Int64("max-difficulty", -1, "drop arrangements above this difficulty, -1 for no limit")

	_ = v.BindPFlags(pf)
	_ = v.BindPFlags(f)

	root.AddCommand(newTuningsCmd(v))

	return root
}

// readConfigFile loads --config, or .fretpath.toml from the working or home
// directory when present.
func readConfigFile(cmd *cobra.Command, v *viper.Viper) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".fretpath")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	// A missing default config file is fine; we use defaults.
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

func runArrange(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log := config.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	fb, err := cfg.Fretboard()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	beats, err := notation.Parse(in)
	if err != nil {
		return err
	}
	log.Info("input parsed", "beats", len(beats), "tuning", cfg.Tuning, "frets", cfg.Frets, "capo", cfg.Capo)

	opts := []arrangement.Option{arrangement.WithLogger(log), arrangement.WithWorkers(cfg.Workers)}
	if cfg.MaxDifficulty >= 0 {
		opts = append(opts, arrangement.WithMaxDifficulty(cfg.MaxDifficulty))
	}
	arrs, err := arrangement.GenerateContext(cmd.Context(), fb, beats, cfg.Count, opts...)
	if err != nil {
		return err
	}

	tabOpts := []tab.Option{tab.WithWidth(cfg.Width), tab.WithPadding(cfg.Padding)}
	if cfg.Playback >= 0 {
		tabOpts = append(tabOpts, tab.WithPlayback(cfg.Playback))
	}

	return printArrangements(cmd.OutOrStdout(), arrs, fb.StringCount(), tabOpts)
}

func printArrangements(w io.Writer, arrs []arrangement.Arrangement, stringCount int, opts []tab.Option) error {
	for i, a := range arrs {
		text, err := tab.Render(a.Lines, stringCount, opts...)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Arrangement %d: difficulty %d, max fret span %d\n", i+1, a.Difficulty, a.MaxFretSpan)
		fmt.Fprint(w, text)
	}

	return nil
}
