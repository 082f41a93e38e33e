// Command ngxdump marshals a frame description into the parameter store an
// ngx engine receives, evaluates it, and prints the store.
//
//	ngxdump -frame frame.toml
//	ngxdump -config ngx.yaml -frame frame.yaml -format toml -frames 3 -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ngx"
	"github.com/gogpu/ngx/backend"
	_ "github.com/gogpu/ngx/backend/native"
	_ "github.com/gogpu/ngx/backend/recording"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("ngxdump: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ngxdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "system config file (.toml, .yaml)")
		framePath  = fs.String("frame", "", "frame description file (.toml, .yaml)")
		format     = fs.String("format", "text", "output format: text or toml")
		engine     = fs.String("engine", backend.EngineRecording, "engine name, empty for the default engine")
		frames     = fs.Int("frames", 1, "number of evaluations to record")
		verbose    = fs.Bool("v", false, "log engine activity to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *framePath == "" {
		return errors.New("-frame is required")
	}
	if *format != "text" && *format != "toml" {
		return fmt.Errorf("unknown format %q", *format)
	}
	if *verbose {
		ngx.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer ngx.SetLogger(nil)
	}

	cfg := ngx.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = ngx.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	fr, err := loadFrame(*framePath)
	if err != nil {
		return err
	}
	q, err := ngx.ParseQualityPreset(fr.Quality)
	if err != nil {
		return err
	}

	sys, err := backend.Open(*engine, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sys.Close(); cerr != nil {
			log.Printf("ngxdump: close: %v", cerr)
		}
	}()

	settings, err := renderSettings(sys, fr, q)
	if err != nil {
		return err
	}

	var (
		desc    ngx.Descriptor
		feature *ngx.Feature
	)
	switch fr.Feature {
	case ngx.FeatureSuperSampling.String():
		ss, err := sys.CreateSuperSamplingFeature(0, ngx.SuperSamplingFromSettings(settings))
		if err != nil {
			return err
		}
		if err := fr.superSampling(ss.EvaluationParameters()); err != nil {
			return err
		}
		desc, feature = ss.EvaluationParameters(), ss.Inner()
	case ngx.FeatureRayReconstruction.String():
		rr, err := sys.CreateRayReconstructionFeature(0, ngx.RayReconstructionFromSettings(settings))
		if err != nil {
			return err
		}
		if err := fr.rayReconstruction(rr.EvaluationParameters()); err != nil {
			return err
		}
		desc, feature = rr.EvaluationParameters(), rr.Inner()
	default:
		return fmt.Errorf("unknown feature %q", fr.Feature)
	}
	defer func() { _ = feature.Release() }()

	var m ngx.Marshaller
	st, err := m.Marshal(desc)
	if err != nil {
		return err
	}
	for i := range *frames {
		if err := feature.Evaluate(ngx.CommandBuffer(i+1), desc); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	if *format == "toml" {
		return writeTOML(stdout, st)
	}
	fmt.Fprintf(stdout, "# %s %s %dx%d -> %dx%d (%d entries)\n", feature.Kind(), settings.Quality,
		settings.RenderWidth, settings.RenderHeight, settings.TargetWidth, settings.TargetHeight, st.Len())
	return writeText(stdout, st)
}

// renderSettings uses the render size of the frame when given and asks the
// engine for the optimal one otherwise.
func renderSettings(sys *ngx.System, fr *frame, q ngx.QualityPreset) (ngx.OptimalSettings, error) {
	if fr.Target.Width == 0 || fr.Target.Height == 0 {
		return ngx.OptimalSettings{}, errors.New("frame: target size is required")
	}
	if fr.Render.Width != 0 && fr.Render.Height != 0 {
		return ngx.OptimalSettings{
			RenderWidth:  fr.Render.Width,
			RenderHeight: fr.Render.Height,
			TargetWidth:  fr.Target.Width,
			TargetHeight: fr.Target.Height,
			Quality:      q,
		}, nil
	}
	return sys.QueryOptimalSettings(fr.Target.Width, fr.Target.Height, q)
}

// sortedKeys returns the keys of st ordered by name.
func sortedKeys(st *ngx.ParameterStore) []ngx.Key {
	keys := st.Keys()
	slices.SortFunc(keys, func(a, b ngx.Key) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return keys
}

func writeText(w io.Writer, st *ngx.ParameterStore) error {
	for _, k := range sortedKeys(st) {
		v, _ := st.Get(k)
		if _, err := fmt.Fprintf(w, "%-45s %-7s %s\n", k, v.Kind(), v); err != nil {
			return err
		}
	}
	return nil
}

func writeTOML(w io.Writer, st *ngx.ParameterStore) error {
	doc := make(map[string]any, st.Len())
	for _, k := range sortedKeys(st) {
		v, _ := st.Get(k)
		doc[k.String()] = plain(v)
	}
	enc := toml.NewEncoder(w)
	return enc.Encode(doc)
}

func plain(v ngx.Value) any {
	switch v.Kind() {
	case ngx.KindFloat:
		f, _ := v.Float()
		return f
	case ngx.KindInt:
		i, _ := v.Int()
		return i
	case ngx.KindUint:
		u, _ := v.Uint()
		return u
	}
	p, _ := v.Pointer()
	switch x := p.(type) {
	case *ngx.ResourceBinding:
		return map[string]any{
			"view":       uint64(x.View),
			"image":      uint64(x.Image),
			"format":     int32(x.Format),
			"width":      x.Width,
			"height":     x.Height,
			"read_write": x.ReadWrite,
		}
	case *[16]float32:
		return x[:]
	}
	return v.String()
}
