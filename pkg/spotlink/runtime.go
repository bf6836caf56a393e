package spotlink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	amqpsink "github.com/maskor/spotlink/internal/adapters/amqp"
	"github.com/maskor/spotlink/internal/adapters/journal"
	"github.com/maskor/spotlink/internal/adapters/observability"
	"github.com/maskor/spotlink/internal/adapters/queue"
	"github.com/maskor/spotlink/internal/adapters/robotrpc"
	"github.com/maskor/spotlink/internal/adapters/sink"
	"github.com/maskor/spotlink/internal/adapters/timesync"
	"github.com/maskor/spotlink/internal/app/pipeline"
	"github.com/maskor/spotlink/internal/assembler"
	"github.com/maskor/spotlink/internal/ports"
)

// DriverOption customizes the dependencies used by DriverRuntime.
type DriverOption func(*runtimeOverrides)

type runtimeOverrides struct {
	client        StateClient
	timeSync      TimeSync
	sink          Sink
	journal       Journal
	queue         StateQueue
	observability Observability
}

// WithStateClient injects a custom state transport (simulators, test
// doubles, alternative robot APIs).
func WithStateClient(c StateClient) DriverOption {
	return func(o *runtimeOverrides) {
		o.client = c
	}
}

// WithTimeSync injects a custom clock-skew source. The caller then owns its
// refresh lifecycle.
func WithTimeSync(ts TimeSync) DriverOption {
	return func(o *runtimeOverrides) {
		o.timeSync = ts
	}
}

// WithSink injects a custom sink so snapshots can be sent to any database or
// API.
func WithSink(s Sink) DriverOption {
	return func(o *runtimeOverrides) {
		o.sink = s
	}
}

// WithJournal lets callers bring their own journal implementation or reuse
// an existing instance.
func WithJournal(j Journal) DriverOption {
	return func(o *runtimeOverrides) {
		o.journal = j
	}
}

// WithStateQueue injects a custom queue implementation.
func WithStateQueue(q StateQueue) DriverOption {
	return func(o *runtimeOverrides) {
		o.queue = q
	}
}

// WithObservability plugs in a custom observability backend.
func WithObservability(obs Observability) DriverOption {
	return func(o *runtimeOverrides) {
		o.observability = obs
	}
}

// DriverRuntime wires up the poll → journal → queue → sink pipeline around
// one robot and exposes simple lifecycle hooks for embedding spotlink inside
// any Go service.
type DriverRuntime struct {
	cfg    *Config
	policy ports.Policy
	obs    ports.Observability

	client    ports.StateClient
	timeSync  ports.TimeSync
	estimator *timesync.Estimator
	asm       *assembler.Assembler
	journal   ports.Journal
	queue     ports.StateQueue
	sink      ports.Sink

	db         *sql.DB
	amqpPub    *amqpsink.Publisher
	metricsSrv *http.Server

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	gaugeStopCh chan struct{}
}

// NewDriverRuntime bootstraps the default adapters (JSON-RPC state client,
// round-trip time sync, file journal, in-memory queue, Timescale sink plus
// optional AMQP fanout, Prometheus observability). DriverOption values
// override any dependency.
func NewDriverRuntime(cfg *Config, opts ...DriverOption) (*DriverRuntime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var overrides runtimeOverrides
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	obs := overrides.observability
	if obs == nil {
		obs = observability.NewPromObs()
	}

	client := overrides.client
	var rpcClient *robotrpc.Client
	if client == nil {
		var err error
		rpcClient, err = robotrpc.NewClient(cfg.RPC)
		if err != nil {
			return nil, err
		}
		client = rpcClient
	}

	ts := overrides.timeSync
	var estimator *timesync.Estimator
	if ts == nil {
		if rpcClient == nil {
			return nil, fmt.Errorf("a custom state client requires WithTimeSync")
		}
		estimator = timesync.NewEstimator(cfg.TimeSync, rpcClient, obs)
		ts = estimator
	}

	var (
		jr  ports.Journal
		err error
	)
	if overrides.journal != nil {
		jr = overrides.journal
	} else {
		jr, err = journal.NewFileJournal(cfg.Journal.Dir)
		if err != nil {
			return nil, err
		}
	}

	q := overrides.queue
	if q == nil {
		q = queue.NewMemQueue(cfg.Policy.MaxQueueLen)
	}

	if err := replayJournalIntoQueue(jr, q, cfg.Policy, obs); err != nil {
		return nil, err
	}

	var (
		db      *sql.DB
		amqpPub *amqpsink.Publisher
		snk     ports.Sink
	)
	if overrides.sink != nil {
		snk = overrides.sink
	} else {
		db, err = sql.Open("postgres", cfg.Timescale.ConnString)
		if err != nil {
			return nil, err
		}
		sinks := []ports.Sink{sink.NewTimescaleSink(db, cfg.Timescale.Table, cfg.Robot.Name)}

		if cfg.AMQP.URL != "" {
			amqpPub, err = amqpsink.NewPublisher(cfg.AMQP)
			if err != nil {
				db.Close()
				return nil, err
			}
			sinks = append(sinks, amqpPub)
		}
		snk = newMultiSink(sinks...)
	}

	return &DriverRuntime{
		cfg:       cfg,
		policy:    cfg.Policy,
		obs:       obs,
		client:    client,
		timeSync:  ts,
		estimator: estimator,
		asm:       assembler.New(client, ts, cfg.Robot.Name, cfg.Robot.PreferredOdomFrame),
		journal:   jr,
		queue:     q,
		sink:      snk,
		db:        db,
		amqpPub:   amqpPub,
	}, nil
}

// Assembler exposes the snapshot assembler so embedding services can pull
// one-off snapshots outside the periodic pipeline.
func (d *DriverRuntime) Assembler() *assembler.Assembler {
	return d.asm
}

// Start begins time synchronization and the poll + publish pipelines, and
// launches the observability stack. It returns immediately; call Run to
// block on a context instead.
func (d *DriverRuntime) Start() error {
	if d == nil {
		return fmt.Errorf("driver runtime is nil")
	}

	if d.amqpPub != nil {
		if err := d.amqpPub.Connect(); err != nil {
			return err
		}
	}
	if d.estimator != nil {
		if err := d.estimator.Start(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(2)
	go func() {
		defer d.wg.Done()
		pipeline.RunPollPipeline(ctx, d.asm, d.journal, d.queue, d.cfg.Robot.PollInterval, d.policy, d.obs)
	}()
	go func() {
		defer d.wg.Done()
		pipeline.RunPublishPipeline(ctx, d.journal, d.queue, d.sink, d.policy, d.obs)
	}()

	d.startMetrics()
	return nil
}

// Run starts the runtime and blocks until the provided context is cancelled,
// then attempts a graceful shutdown.
func (d *DriverRuntime) Run(ctx context.Context) error {
	if err := d.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.Shutdown(shutdownCtx)
}

// Shutdown stops the pipelines, time sync, metrics server, and external
// connections.
func (d *DriverRuntime) Shutdown(ctx context.Context) error {
	var errs []error

	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()

	if d.estimator != nil {
		d.estimator.Stop()
	}

	if d.gaugeStopCh != nil {
		close(d.gaugeStopCh)
	}

	if d.metricsSrv != nil {
		if err := d.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
	}

	if d.amqpPub != nil {
		if err := d.amqpPub.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if d.db != nil {
		if err := d.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (d *DriverRuntime) startMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	d.metricsSrv = &http.Server{
		Addr:    d.cfg.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		if err := d.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server exited: %v", err)
		}
	}()

	d.gaugeStopCh = make(chan struct{})
	go d.recordResourceGauges(d.gaugeStopCh, time.Second)
}

func (d *DriverRuntime) recordResourceGauges(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := d.journal.Stats()
			d.obs.SetGauge("spotlink_journal_size_bytes", float64(stats.SizeBytes))
			d.obs.SetGauge("spotlink_queue_length", float64(d.queue.Len()))
		}
	}
}

func replayJournalIntoQueue(jr ports.Journal, q ports.StateQueue, pol ports.Policy, obs ports.Observability) error {
	stats := jr.Stats()
	if stats.LatestAppended == 0 {
		return nil
	}
	start := stats.OldestUncommitted
	if start == 0 || start > stats.LatestAppended {
		return nil
	}

	sleep := pol.IdleSleep
	if sleep <= 0 {
		sleep = 5 * time.Millisecond
	}

	var replayed int
	err := jr.Iterate(start, func(id JournalEntryID, s *RobotState) error {
		for {
			if q.Enqueue(id, s) {
				replayed++
				return nil
			}
			switch pol.OnQueueFull {
			case "drop", "reject":
				return fmt.Errorf("queue full during journal replay")
			default:
				time.Sleep(sleep)
			}
		}
	})
	if err != nil {
		return err
	}
	if replayed > 0 {
		obs.LogInfo("journal_replay_complete",
			Field{Key: "snapshots", Value: replayed},
			Field{Key: "from_id", Value: start})
	}
	return nil
}

type multiSink struct {
	sinks []ports.Sink
}

func newMultiSink(sinks ...ports.Sink) ports.Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &multiSink{sinks: sinks}
}

func (m *multiSink) Name() string { return "multi" }

func (m *multiSink) WriteBatch(states []*RobotState) error {
	for _, s := range m.sinks {
		if err := s.WriteBatch(states); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return nil
}
