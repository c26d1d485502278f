package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/loop"
	"github.com/vovakirdan/tui-frogger/internal/sched"
)

var flagYAML bool

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Show resolved tuning and lane intervals per level",
	Long: `Resolve the tuning exactly as play does (config search order, then the
difficulty preset, then validation) and print the countdown and each lane's
interval and direction for every level.

Examples:
  frogger tuning
  frogger tuning --difficulty hard
  frogger tuning --config ./my-frogger.yaml --yaml`,
	Args: cobra.NoArgs,
	Run:  runTuning,
}

func init() {
	tuningCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the resolved config as YAML")
}

func runTuning(_ *cobra.Command, _ []string) {
	settings, cfg, err := loop.LoadSettings(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	m := loop.NewMachine(settings)
	s := sched.New(settings.Lanes, settings.Step)
	tick := settings.TickPeriod

	fmt.Printf("Tick %v, lives %d (max %d), %d levels\n\n", tick, settings.Lives, settings.MaxLives, settings.MaxLevel)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "Level\tTime")
	for _, l := range s.Lanes() {
		fmt.Fprintf(w, "\t%s %d", l.Kind, l.Index)
	}
	fmt.Fprintln(w)

	for level := 1; level <= settings.MaxLevel; level++ {
		s.Reset(0, level)
		fmt.Fprintf(w, "%d\t%ds", s.Level(), m.Clock.Seconds(s.Level()))
		for i := range settings.Lanes {
			lt := s.Timer(i)
			fmt.Fprintf(w, "\t%v %s", tick*time.Duration(lt.Interval), lt.Dir)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
