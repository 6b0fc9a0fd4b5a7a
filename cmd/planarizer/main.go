// Package main is the planarizer command itself.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/meshkit/planarizer/mesh"
	"github.com/meshkit/planarizer/planarize"
)

const (
	flagIn     = "in"
	flagOut    = "out"
	flagPlane  = "plane"
	flagAnchor = "anchor"
	flagMode   = "mode"
	flagCursor = "cursor"
	flagSelect = "select"
	flagNGons  = "ngons"
	flagDebug  = "debug"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var logger golog.Logger

	return &cli.App{
		Name:  "planarizer",
		Usage: "flatten selected mesh vertices onto a plane to repair non-planar quads",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagIn,
				Usage:    "mesh file to read (.ply)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagOut,
				Usage:    "mesh file to write (.ply)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  flagPlane,
				Value: "cursor",
				Usage: "plane source: cursor, average, connected, or bestfit",
			},
			&cli.StringFlag{
				Name:  flagAnchor,
				Value: "cursor",
				Usage: "plane anchor: cursor, median, or connected",
			},
			&cli.StringFlag{
				Name:  flagMode,
				Value: "grouped",
				Usage: "iteration mode: grouped or individual",
			},
			&cli.StringFlag{
				Name:  flagCursor,
				Value: "0,0,0",
				Usage: "reference point as \"x,y,z\" in world space",
			},
			&cli.StringFlag{
				Name:  flagSelect,
				Usage: "vertex indices to planarize as \"i,j,k\", or \"all\"",
			},
			&cli.BoolFlag{
				Name:  flagNGons,
				Usage: "let n-gons participate alongside quads",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("planarizer")
			} else {
				logger = zap.NewNop().Sugar()
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return runPlanarize(c, logger)
		},
	}
}

func runPlanarize(c *cli.Context, logger golog.Logger) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return err
	}
	cursor, err := parsePoint(c.String(flagCursor))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", flagCursor)
	}

	m, err := mesh.NewFromFile(c.String(flagIn), logger)
	if err != nil {
		return err
	}
	if err := applySelection(m, c.String(flagSelect)); err != nil {
		return err
	}

	pl, err := planarize.New(cfg, planarize.NewStaticReferencePoint(cursor), logger)
	if err != nil {
		return err
	}
	if err := pl.Run(m); err != nil {
		return err
	}
	return mesh.WriteToFile(c.String(flagOut), m)
}

func configFromFlags(c *cli.Context) (planarize.Config, error) {
	var cfg planarize.Config
	var err error
	if cfg.PlaneSource, err = planarize.ParsePlaneSource(c.String(flagPlane)); err != nil {
		return cfg, err
	}
	if cfg.Anchor, err = planarize.ParseAnchor(c.String(flagAnchor)); err != nil {
		return cfg, err
	}
	if cfg.Mode, err = planarize.ParseMode(c.String(flagMode)); err != nil {
		return cfg, err
	}
	cfg.IncludeNGons = c.Bool(flagNGons)
	return cfg, cfg.Validate()
}

func parsePoint(s string) (r3.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vector{}, errors.Errorf("expected \"x,y,z\", got %q", s)
	}
	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return r3.Vector{}, errors.Errorf("bad coordinate %q", part)
		}
		coords[i] = v
	}
	return r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func applySelection(m *mesh.Mesh, sel string) error {
	sel = strings.TrimSpace(sel)
	if sel == "all" {
		m.SelectAll()
		return nil
	}
	if sel == "" {
		return planarize.ErrEmptySelection
	}
	var indices []int
	for _, part := range strings.Split(sel, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return errors.Errorf("bad vertex index %q", part)
		}
		indices = append(indices, i)
	}
	return m.SelectVertices(indices...)
}
