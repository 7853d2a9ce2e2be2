package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-tessellate/pkg/logger"
	"github.com/0x0FACED/go-tessellate/pkg/voronoi"
	"github.com/0x0FACED/go-tessellate/static"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo page that draws the diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return newServer(cfg).run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML or TOML config file")
	cmd.Flags().StringVar(&addr, "addr", DefaultConfig().Addr, "HTTP listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", DefaultConfig().LogLevel, "log level shown on the page")
	return cmd
}

type server struct {
	cfg   Config
	level zapcore.Level
	log   *logger.ZapLogger
}

func newServer(cfg Config) *server {
	level, _ := logger.ParseLevel(cfg.LogLevel)
	return &server{
		cfg:   cfg,
		level: level,
		log:   logger.NewWriter(os.Stderr, zapcore.InfoLevel),
	}
}

func (s *server) run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.diagramHandler)

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("[http] listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	s.log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// diagramRequest is what the page form asks for.
type diagramRequest struct {
	width, height int
	stations      int
	random        bool
	policy        voronoi.BorderPolicy
	relax         int
}

func (s *server) defaultRequest() diagramRequest {
	policy, _ := voronoi.ParseBorderPolicy(s.cfg.Policy)
	return diagramRequest{
		width:    s.cfg.Width,
		height:   s.cfg.Height,
		stations: s.cfg.Stations,
		policy:   policy,
		relax:    s.cfg.Relax,
	}
}

// parseForm reads the posted form over the configured defaults.
func (s *server) parseForm(r *http.Request) (diagramRequest, error) {
	req := s.defaultRequest()
	if r.Method != http.MethodPost {
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, errors.Wrap(err, "parsing form")
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"width", &req.width},
		{"height", &req.height},
		{"stations", &req.stations},
		{"relax", &req.relax},
	}
	for _, f := range ints {
		v := r.FormValue(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.Wrapf(err, "field %s", f.key)
		}
		*f.dst = n
	}
	req.random = r.FormValue("random") == "true"
	if v := r.FormValue("policy"); v != "" {
		p, err := voronoi.ParseBorderPolicy(v)
		if err != nil {
			return req, err
		}
		req.policy = p
	}
	return req, validateSize(req.width, req.height, req.stations, req.relax)
}

func (s *server) diagram(req diagramRequest, log *logger.ZapLogger) (*voronoi.Diagram, error) {
	var stations []voronoi.Vertex
	if req.random {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		stations = generateRandStations(rng, req.stations, req.width, req.height)
	} else {
		stations = generateFixStations(req.stations, req.width, req.height)
	}

	bbox := voronoi.NewBoundingBox(0, 0, float64(req.width), float64(req.height))

	if req.relax > 0 {
		relaxed, err := voronoi.Relax(stations, bbox, req.relax, voronoi.WithLogger(log))
		if err != nil {
			return nil, err
		}
		stations = relaxed
	}
	return voronoi.Tessellate(stations, bbox, req.policy, voronoi.WithLogger(log))
}

// diagramHandler serves the page with the diagram and the form.
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log := logger.New(s.level)
	diagram, err := s.diagram(req, log)
	if err != nil {
		s.log.Error("[http] tessellation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := diagram.Validate(); err != nil {
		log.Warn("[http] diagram invariants", zap.Error(err))
	}

	scatter := diagramToEcharts(diagram)

	fmt.Fprintln(w, static.Form(req.width, req.height, req.stations, req.random, req.policy.String(), req.relax))
	if err := scatter.Render(w); err != nil {
		s.log.Error("[http] chart rendering failed", zap.Error(err))
	}
	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, log.HTML())
	fmt.Fprintln(w, static.Part3)
}
