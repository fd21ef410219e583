package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fretpath/fretboard"
	"github.com/katalvlaran/fretpath/internal/config"
)

func newTuningsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tunings",
		Short: "List built-in and custom tunings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := make(map[string]fretboard.Tuning)
			for _, name := range fretboard.PresetNames() {
				t, err := fretboard.Preset(name)
				if err != nil {
					return err
				}
				all[name] = t
			}
			if path := v.GetString("tunings-file"); path != "" {
				custom, err := config.LoadTunings(path)
				if err != nil {
					return err
				}
				for name, t := range custom {
					all[name] = t
				}
			}

			names := make([]string, 0, len(all))
			for name := range all {
				names = append(names, name)
			}
			sort.Strings(names)

			w := cmd.OutOrStdout()
			for _, name := range names {
				t := all[name]
				open := make([]string, 0, len(t))
				for _, s := range t.Strings() {
					open = append(open, t[s].String())
				}
				fmt.Fprintf(w, "%s: %s\n", name, strings.Join(open, " "))
			}

			return nil
		},
	}
}
