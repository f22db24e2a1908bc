package session

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zoobzio/astcql"
)

// Querier creates driver queries. *gocql.Session satisfies it.
type Querier interface {
	Query(stmt string, values ...interface{}) *gocql.Query
}

// Executor renders statements and runs them through a Querier.
type Executor struct {
	cfg         Config
	querier     Querier
	logger      log.Logger
	metrics     *metrics
	consistency gocql.Consistency
	serial      gocql.SerialConsistency
	hasSerial   bool

	// Replaced in tests; a zero gocql.Query cannot reach a cluster.
	exec    func(q *gocql.Query) error
	scanCAS func(q *gocql.Query, dest ...interface{}) (bool, error)
}

// New returns an Executor. A nil logger discards logs and a nil registerer
// leaves the metrics unregistered.
func New(cfg Config, q Querier, logger log.Logger, reg prometheus.Registerer) (*Executor, error) {
	if q == nil {
		return nil, errors.New("querier cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	consistency, err := cfg.consistency()
	if err != nil {
		return nil, err
	}
	serial, hasSerial, err := cfg.serialConsistency()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Executor{
		cfg:         cfg,
		querier:     q,
		logger:      logger,
		metrics:     newMetrics(reg),
		consistency: consistency,
		serial:      serial,
		hasSerial:   hasSerial,
		exec:        (*gocql.Query).Exec,
		scanCAS: func(q *gocql.Query, dest ...interface{}) (bool, error) {
			return q.ScanCAS(dest...)
		},
	}, nil
}

// Exec renders and executes stmt.
func (e *Executor) Exec(ctx context.Context, stmt astcql.Statement) error {
	_, err := e.run(ctx, stmt, func(q *gocql.Query) (bool, error) {
		return true, e.exec(q)
	})
	return err
}

// ExecCAS executes a conditional statement and reports whether it was
// applied. When it was not, dest receives the current values.
func (e *Executor) ExecCAS(ctx context.Context, stmt astcql.Statement, dest ...interface{}) (bool, error) {
	return e.run(ctx, stmt, func(q *gocql.Query) (bool, error) {
		return e.scanCAS(q, dest...)
	})
}

func (e *Executor) run(ctx context.Context, stmt astcql.Statement, do func(*gocql.Query) (bool, error)) (bool, error) {
	req, err := Prepare(stmt)
	if err != nil {
		return false, err
	}
	if req.Keyspace == "" {
		req.Keyspace = e.cfg.Keyspace
	}

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	q := e.query(ctx, req)
	defer q.Release()

	start := time.Now()
	applied, err := do(q)
	e.metrics.observe(req, err)
	if err != nil {
		level.Warn(e.logger).Log("msg", "statement failed", "kind", req.Kind, "keyspace", req.Keyspace, "err", err)
		return false, errors.WithStack(err)
	}

	level.Debug(e.logger).Log("msg", "statement executed", "kind", req.Kind, "keyspace", req.Keyspace, "values", len(req.Values), "duration", time.Since(start))
	return applied, nil
}

func (e *Executor) query(ctx context.Context, req *Request) *gocql.Query {
	q := e.querier.Query(req.CQL, req.Values...).
		WithContext(ctx).
		Consistency(e.consistency).
		Idempotent(e.cfg.Idempotent)
	if e.hasSerial {
		q = q.SerialConsistency(e.serial)
	}
	if req.RoutingKey != nil {
		q = q.RoutingKey(req.RoutingKey)
	}
	return q
}
