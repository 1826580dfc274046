package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/expression"
	"github.com/damedic/rdf-toolbox-go/literal"
	"github.com/damedic/rdf-toolbox-go/ntriples"
	"github.com/damedic/rdf-toolbox-go/rest"
	"github.com/damedic/rdf-toolbox-go/storage"
)

// Globals are the flags shared by all commands.
type Globals struct {
	Config   string `help:"YAML configuration file" type:"path" short:"c"`
	LogLevel string `help:"Log level (debug, info, warn, error), overrides the configuration file" name:"log-level"`
	Remote   string `help:"Evaluate on the rdflit server at this base URL" placeholder:"URL"`

	Out io.Writer `kong:"-"`
}

func (g *Globals) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// session holds what a command evaluates with: either a local storage or a client
// of a remote server.
type session struct {
	cfg    Config
	ctx    context.Context
	store  storage.Storage
	opts   []literal.Option
	client *rest.Client
	close  func() error
}

func (g *Globals) open() (*session, error) {
	cfg, err := LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	level, err := parseLevel(cmp.Or(g.LogLevel, cfg.Log.Level))
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := &session{
		cfg: cfg,
		ctx: datatypes.WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(cfg.DecimalPrecision)),
	}
	if g.Remote != "" {
		s.client, err = rest.NewClient(g.Remote)
		if err != nil {
			return nil, err
		}
		s.close = func() error { return nil }
		return s, nil
	}

	s.store, s.close, err = cfg.OpenStorage()
	if err != nil {
		return nil, err
	}
	s.opts = []literal.Option{literal.WithStorage(s.store)}
	slog.Debug("opened storage", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)
	return s, nil
}

func formatResult(res *string) string {
	if res == nil {
		return "null"
	}
	return *res
}

func (s *session) eval(text string) (string, error) {
	if s.client != nil {
		res, err := s.client.Evaluate(s.ctx, text)
		return formatResult(res), err
	}
	expr, err := expression.Parse(text)
	if err != nil {
		return "", err
	}
	res, err := expression.Evaluate(s.ctx, expr, s.opts...)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

func (s *session) cast(term, datatype string) (string, error) {
	if s.client != nil {
		res, err := s.client.Cast(s.ctx, term, datatype)
		return formatResult(res), err
	}
	l, err := ntriples.ParseLiteral(term, s.opts...)
	if err != nil {
		return "", err
	}
	return l.Cast(s.ctx, ntriples.ExpandIRI(datatype)).String(), nil
}

func (s *session) compare(lhs, rhs string) (string, error) {
	if s.client != nil {
		res, err := s.client.Compare(s.ctx, lhs, rhs)
		return res.Ordering, err
	}
	a, err := ntriples.ParseLiteral(lhs, s.opts...)
	if err != nil {
		return "", err
	}
	b, err := ntriples.ParseLiteral(rhs, s.opts...)
	if err != nil {
		return "", err
	}
	return a.Compare(b).String(), nil
}

// EvalCmd evaluates an expression given as one or more words.
type EvalCmd struct {
	Expression []string `arg:"" help:"Expression, the words are joined with spaces"`
}

func (c *EvalCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.eval(strings.Join(c.Expression, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out(), res)
	return nil
}

// CastCmd casts a term.
type CastCmd struct {
	Term     string `arg:"" help:"Term in N-Triples syntax"`
	Datatype string `arg:"" help:"Target datatype IRI or prefixed name"`
}

func (c *CastCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.cast(c.Term, c.Datatype)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out(), res)
	return nil
}

// CompareCmd prints the ordering of two terms.
type CompareCmd struct {
	LHS string `arg:"" name:"lhs" help:"Left term in N-Triples syntax"`
	RHS string `arg:"" name:"rhs" help:"Right term in N-Triples syntax"`
}

func (c *CompareCmd) Run(g *Globals) error {
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.compare(c.LHS, c.RHS)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out(), res)
	return nil
}

// ServeCmd serves the HTTP API until interrupted.
type ServeCmd struct {
	Addr         string        `help:"Listen address" default:":8080"`
	MaxBodyBytes int64         `help:"Maximum request body size" default:"1048576"`
	ShutdownWait time.Duration `help:"Time to wait for open requests on shutdown" default:"5s"`
}

func (c *ServeCmd) Run(g *Globals) error {
	if g.Remote != "" {
		return fmt.Errorf("serve does not support --remote")
	}
	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.close()

	server := &http.Server{
		Addr: c.Addr,
		Handler: &rest.Server{
			Storage:          s.store,
			DecimalPrecision: s.cfg.DecimalPrecision,
			MaxBodyBytes:     c.MaxBodyBytes,
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()
	slog.Info("listening", "addr", c.Addr, "storage", s.cfg.Storage.Driver)

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownWait)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
