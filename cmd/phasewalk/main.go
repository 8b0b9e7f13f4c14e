// Package main is a small command-line front end to the phase-space engine.
// It prints JSON for one operation per invocation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/GhostMeshIO/SillyAxioms/config"
	"github.com/GhostMeshIO/SillyAxioms/engine"
	"github.com/GhostMeshIO/SillyAxioms/phase"
)

const usage = `usage: phasewalk [flags] <curvature|descend|geodesic|nearest|summary|dynamics|survey>`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		config.Exitf("phasewalk: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("phasewalk", flag.ContinueOnError)
	from := fs.String("from", "", "start point: framework name or five comma-separated values")
	to := fs.String("to", "", "end point for geodesic: framework name or five values")
	points := fs.Int("points", 0, "geodesic sample count (0 = configured)")
	steps := fs.Int("steps", 0, "descent or dynamics steps (0 = configured)")
	name := fs.String("framework", "", "framework for summary or dynamics")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%s", usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	e, err := engine.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer e.Close()

	var result any
	switch op := fs.Arg(0); op {
	case "curvature", "descend", "nearest":
		start, err := resolve(e, *from)
		if err != nil {
			return err
		}
		switch op {
		case "curvature":
			result = e.Curvature(start)
		case "nearest":
			result = map[string]string{"framework": e.NearestFramework(start)}
		default:
			opts := cfg.DescentOptions()
			if *steps > 0 {
				opts.Steps = *steps
			}
			if result, err = e.Descend(start, &opts); err != nil {
				return err
			}
		}
	case "geodesic":
		start, err := resolve(e, *from)
		if err != nil {
			return err
		}
		end, err := resolve(e, *to)
		if err != nil {
			return err
		}
		res := e.SolveGeodesic(start, end, *points)
		result = map[string]any{"method": res.Method.String(), "path": res.Path}
	case "summary":
		result = e.Summary(*name)
	case "dynamics":
		result = e.Dynamics(*name, *steps, nil)
	case "survey":
		if result, err = e.Survey(ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown operation %q\n%s", op, usage)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

// resolve accepts a framework name or "p,pl,s,t,g".
func resolve(e *engine.Engine, arg string) (phase.Coordinate, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return phase.Coordinate{}, fmt.Errorf("missing coordinate")
	}
	if !strings.Contains(arg, ",") {
		return e.Framework(arg).Coordinate, nil
	}
	parts := strings.Split(arg, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return phase.Coordinate{}, fmt.Errorf("coordinate %q: %w", arg, err)
		}
		vals[i] = v
	}

	return phase.FromSlice(vals)
}
