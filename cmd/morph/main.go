package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fogleman/ease"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/morph/internal/config"
	"github.com/san-kum/morph/internal/dataset"
	"github.com/san-kum/morph/internal/layout"
	"github.com/san-kum/morph/internal/stage"
	"github.com/san-kum/morph/internal/storage"
	"github.com/san-kum/morph/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool

	count       int
	formation   string
	durationMS  int
	frameRate   int
	sourceURL   string
	tokenEnv    string
	autoOrbit   bool
	camDistance float64
	limit       int
	samples     int

	logger *log.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "morph",
		Short: "arrange tiles in 3D formations and morph between them",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger = log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := runView(nil); err != nil {
				logger.Error("view failed", "err", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".morph", "data directory for exported snapshots")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	viewCmd := &cobra.Command{
		Use:   "view [dataset]",
		Short: "live 3D view of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args)
		},
	}
	viewCmd.Flags().StringVar(&sourceURL, "url", "", "fetch the dataset over HTTP instead of a file")
	viewCmd.Flags().StringVar(&tokenEnv, "token-env", "", "environment variable holding the bearer token")
	viewCmd.Flags().IntVar(&count, "count", 0, "synthesize a sample dataset of this size when no source is given")
	viewCmd.Flags().IntVar(&durationMS, "duration", config.DefaultDurationMS, "transition duration in milliseconds")
	viewCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate for the live view")
	viewCmd.Flags().StringVar(&formation, "formation", string(layout.FormationTable), "initial formation")
	viewCmd.Flags().BoolVar(&autoOrbit, "orbit", false, "slowly orbit the camera")
	viewCmd.Flags().Float64Var(&camDistance, "distance", config.DefaultDistance, "camera distance")

	layoutCmd := &cobra.Command{
		Use:   "layout [formation]",
		Short: "print computed target transforms",
		Args:  cobra.ExactArgs(1),
		RunE:  runLayout,
	}
	layoutCmd.Flags().IntVar(&count, "count", 100, "item count")
	layoutCmd.Flags().IntVar(&limit, "limit", 20, "rows to print (0 for all)")

	exportCmd := &cobra.Command{
		Use:   "export [name]",
		Short: "save all four formations' targets as a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().IntVar(&count, "count", 100, "item count")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list exported snapshots",
		RunE:  runList,
	}

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot the transition easing curve",
		Run:   runCurve,
	}
	curveCmd.Flags().IntVar(&samples, "samples", 80, "sample points")

	rootCmd.AddCommand(viewCmd, layoutCmd, exportCmd, listCmd, curveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSource resolves the dataset from, in order: the URL flag, a file
// argument, the config file, or a synthesized sample.
func loadSource(args []string) (*dataset.Source, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Debug("config loaded", "path", configFile)
	}
	if sourceURL == "" {
		sourceURL = cfg.Source.URL
	}
	if tokenEnv == "" {
		tokenEnv = cfg.Source.TokenEnv
	}

	switch {
	case sourceURL != "":
		token := os.Getenv(tokenEnv)
		logger.Info("fetching dataset", "url", sourceURL)
		src, err := dataset.NewFetcher(token).Fetch(context.Background(), sourceURL)
		if errors.Is(err, dataset.ErrAccessDenied) {
			return nil, fmt.Errorf("%w (no items were created)", err)
		}
		return src, err
	case len(args) == 1:
		logger.Info("loading dataset", "path", args[0])
		return dataset.Load(args[0])
	case cfg.Dataset != "":
		logger.Info("loading dataset", "path", cfg.Dataset)
		return dataset.Load(cfg.Dataset)
	default:
		n := count
		if n <= 0 {
			n = 120
		}
		logger.Info("no dataset given, using sample", "count", n)
		return sampleSource(n), nil
	}
}

// sampleSource synthesizes a placeholder dataset so the viewer works out of
// the box.
func sampleSource(n int) *dataset.Source {
	src := &dataset.Source{Fields: []string{"symbol", "name"}}
	for i := 0; i < n; i++ {
		sym := string(rune('A'+i/26%26)) + string(rune('a'+i%26))
		src.Rows = append(src.Rows, dataset.Row{
			"symbol": sym,
			"name":   fmt.Sprintf("sample-%03d", i+1),
		})
	}
	return src
}

func runView(args []string) error {
	src, err := loadSource(args)
	if err != nil {
		return err
	}
	logger.Info("dataset ready", "items", src.Count(), "fields", len(src.Fields))

	st := stage.New(time.Duration(durationMS) * time.Millisecond)
	st.Load(src)
	if f := layout.Formation(formation); f != "" && f != layout.FormationTable {
		if err := st.Select(f); err != nil {
			return err
		}
	}
	return viz.Run(st, src, frameRate, camDistance, autoOrbit)
}

func runLayout(cmd *cobra.Command, args []string) error {
	f := layout.Formation(args[0])
	if !f.Valid() {
		return fmt.Errorf("unknown formation %q (want table, sphere, helix or grid)", args[0])
	}

	targets := layout.Compute(count).Targets(f)
	n := len(targets)
	if limit > 0 && limit < n {
		n = limit
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "index\tpx\tpy\tpz\trx\try\trz")
	for i := 0; i < n; i++ {
		t := targets[i]
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%.4f\t%.4f\t%.4f\n",
			i,
			t.Position.X(), t.Position.Y(), t.Position.Z(),
			t.Rotation.X(), t.Rotation.Y(), t.Rotation.Z(),
		)
	}
	if n < len(targets) {
		fmt.Fprintf(w, "... %d more\n", len(targets)-n)
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	id, err := store.Save(args[0], layout.Compute(count))
	if err != nil {
		return err
	}
	logger.Info("snapshot saved", "id", id, "count", count)
	fmt.Println(id)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	snaps, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("no snapshots")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "id\tname\tcount\tsaved")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Count, s.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func runCurve(cmd *cobra.Command, args []string) {
	if samples < 2 {
		samples = 2
	}
	data := make([]float64, samples)
	for i := range data {
		data[i] = ease.InOutExpo(float64(i) / float64(samples-1))
	}
	fmt.Println("exponential ease-in-out")
	fmt.Println(asciigraph.Plot(data, asciigraph.Height(12), asciigraph.Width(samples)))
}
