package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/0x0FACED/go-tessellate/pkg/logger"
	"github.com/0x0FACED/go-tessellate/pkg/voronoi"
)

func tessellateCmd() *cobra.Command {
	var (
		bounds   string
		policy   string
		relax    int
		validate bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "tessellate [sites-file]",
		Short: "Tessellate sites read from a file (or stdin) and print cells and centroids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bbox, err := parseBounds(bounds)
			if err != nil {
				return err
			}
			p, err := voronoi.ParseBorderPolicy(policy)
			if err != nil {
				return err
			}
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log := logger.NewWriter(cmd.ErrOrStderr(), level)
			defer func() { _ = log.Sync() }()

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening sites file")
				}
				defer f.Close()
				in = f
			}
			sites, err := readSites(in)
			if err != nil {
				return err
			}

			if relax > 0 {
				if sites, err = voronoi.Relax(sites, bbox, relax, voronoi.WithLogger(log)); err != nil {
					return err
				}
			}
			d, err := voronoi.Tessellate(sites, bbox, p, voronoi.WithLogger(log))
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), d)
			if validate {
				return d.Validate()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bounds, "bounds", "0,0,1000,1000", "rectangle as minX,minY,maxX,maxY")
	cmd.Flags().StringVar(&policy, "policy", voronoi.OmitBorderEdges.String(), "border policy: omit, border or corners")
	cmd.Flags().IntVar(&relax, "relax", 0, "Lloyd relaxation steps before the final tessellation")
	cmd.Flags().BoolVar(&validate, "validate", false, "fail when the diagram breaks an invariant")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr")
	return cmd
}

// writeReport prints the edge count, then one line per site with its
// centroid and polygon.
func writeReport(w io.Writer, d *voronoi.Diagram) {
	fmt.Fprintf(w, "edges: %d\n", len(d.Edges))
	for _, s := range d.Sites {
		fmt.Fprintf(w, "site %d %s: centroid %s polygon:", s.Index, formatVertex(s.Point), formatVertex(s.Centroid))
		if len(s.Polygon) == 0 {
			fmt.Fprint(w, " none")
		}
		for _, p := range s.Polygon {
			fmt.Fprint(w, " ", formatVertex(p))
		}
		if s.DuplicateOf >= 0 {
			fmt.Fprintf(w, " (duplicate of %d)", s.DuplicateOf)
		}
		fmt.Fprintln(w)
	}
}

func formatVertex(v voronoi.Vertex) string {
	return "(" + formatCoord(v.X) + ", " + formatCoord(v.Y) + ")"
}

// formatCoord rounds to two decimals and never prints "-0.00".
func formatCoord(f float64) string {
	r := math.Round(f*100)/100 + 0
	s := strconv.FormatFloat(r, 'f', 2, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		return s[1:]
	}
	return s
}
