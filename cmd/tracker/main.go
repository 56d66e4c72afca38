package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/block"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/blockworker"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/cache"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/notify"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/pubsub"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/pushtx"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/relevance"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/service/chainsync"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/service/mempool"
	"github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/zmq"
	"github.com/goodnatureofminers/blockinsight7000-tracker/pkg/batcher"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Network model.Network `long:"network" env:"TRACKER_NETWORK" description:"bitcoin network (mainnet, testnet, regtest, signet or an alias such as bitcoin, testnet3)" required:"true"`
	LogDev  bool          `long:"log-dev" env:"TRACKER_LOG_DEV" description:"human readable development logging"`

	RPCURL      string `long:"rpc-url" env:"TRACKER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string `long:"rpc-user" env:"TRACKER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string `long:"rpc-password" env:"TRACKER_RPC_PASSWORD" description:"Bitcoin RPC password"`

	ZMQBlockEndpoint string        `long:"zmq-block" env:"TRACKER_ZMQ_BLOCK" description:"zmq endpoint publishing hashblock" default:"tcp://127.0.0.1:28332"`
	ZMQTxEndpoint    string        `long:"zmq-tx" env:"TRACKER_ZMQ_TX" description:"zmq endpoint publishing rawtx" default:"tcp://127.0.0.1:28333"`
	ZMQPollTimeout   time.Duration `long:"zmq-poll-timeout" env:"TRACKER_ZMQ_POLL_TIMEOUT" description:"zmq receive timeout" default:"5s"`

	PostgresDSN         string        `long:"postgres-dsn" env:"TRACKER_POSTGRES_DSN" description:"Postgres DSN of the tracker store" required:"true"`
	PostgresMaxConns    int32         `long:"postgres-max-conns" env:"TRACKER_POSTGRES_MAX_CONNS" description:"maximum Postgres pool connections, 0 keeps the DSN or pgx default"`
	PostgresMinConns    int32         `long:"postgres-min-conns" env:"TRACKER_POSTGRES_MIN_CONNS" description:"minimum idle Postgres pool connections"`
	PostgresPingTimeout time.Duration `long:"postgres-ping-timeout" env:"TRACKER_POSTGRES_PING_TIMEOUT" description:"timeout of the startup Postgres ping" default:"10s"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"TRACKER_CLICKHOUSE_DSN" description:"ClickHouse DSN of the journal, empty disables it"`

	JournalBatchSize     int           `long:"journal-batch-size" env:"TRACKER_JOURNAL_BATCH_SIZE" description:"journal rows per insert" default:"1000"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"TRACKER_JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"5s"`

	RedisURL         string   `long:"redis-url" env:"TRACKER_REDIS_URL" description:"Redis URL for notifications and pushed transactions" default:"redis://127.0.0.1:6379/0"`
	BlockTopic       string   `long:"block-topic" env:"TRACKER_BLOCK_TOPIC" description:"outbound block topic" default:"block"`
	TransactionTopic string   `long:"transaction-topic" env:"TRACKER_TRANSACTION_TOPIC" description:"outbound transaction topic" default:"transaction"`
	PushTxTopics     []string `long:"pushtx-topic" env:"TRACKER_PUSHTX_TOPICS" env-delim:"," description:"inbound pushed transaction topics" default:"pushtx" default:"pushtx-orchestrator"`
	PushTxGroup      string   `long:"pushtx-group" env:"TRACKER_PUSHTX_GROUP" description:"consumer group of the pushed transaction topics" default:"tracker"`

	MetricsAddr string `long:"metrics-addr" env:"TRACKER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	MempoolInterval     time.Duration `long:"mempool-interval" env:"TRACKER_MEMPOOL_INTERVAL" description:"period of mempool evaluation" default:"2s"`
	UnconfirmedInterval time.Duration `long:"unconfirmed-interval" env:"TRACKER_UNCONFIRMED_INTERVAL" description:"period of unconfirmed transaction reconciliation" default:"5m"`
	IBDThreshold        uint64        `long:"ibd-threshold" env:"TRACKER_IBD_THRESHOLD" description:"header distance that triggers initial block download" default:"13000"`
	MempoolTolerance    uint64        `long:"mempool-tolerance" env:"TRACKER_MEMPOOL_TOLERANCE" description:"blocks the store may lag before mempool tracking pauses" default:"6"`
	BootstrapHeight     uint64        `long:"bootstrap-height" env:"TRACKER_BOOTSTRAP_HEIGHT" description:"height below which sync runs header-only and the mempool is ignored"`

	CacheSize   int           `long:"cache-size" env:"TRACKER_CACHE_SIZE" description:"dedup cache entries" default:"100000"`
	CacheMaxAge time.Duration `long:"cache-max-age" env:"TRACKER_CACHE_MAX_AGE" description:"dedup cache entry lifetime" default:"168h"`

	BlockWorker bool `long:"block-worker" env:"TRACKER_BLOCK_WORKER" description:"process blocks step by step on a dedicated worker"`
}

// recorder is the journal as seen by the services.
type recorder interface {
	RecordBlock(ctx context.Context, record model.BlockRecord) error
	RecordTransaction(ctx context.Context, record model.TxRecord) error
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogDev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger = logger.With(zap.String("network", string(cfg.Network)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, chainsync.ErrFatal) {
			logger.Fatal("chain state is inconsistent", zap.Error(err))
		}
		logger.Fatal("tracker failed", zap.Error(err))
	}
	logger.Info("tracker stopped")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	decoder, err := bitcoin.NewDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init decoder: %w", err)
	}
	connCfg, err := rpcConfig(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return err
	}
	rpc, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()
	node := bitcoin.NewNode(rpc, bitcoin.NewRawTxBatcher(connCfg), decoder, metrics.NewRPCClient(cfg.Network))

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, postgres.PoolConfig{
		MinConns:    cfg.PostgresMinConns,
		MaxConns:    cfg.PostgresMaxConns,
		PingTimeout: cfg.PostgresPingTimeout,
	})
	if err != nil {
		return fmt.Errorf("init postgres pool: %w", err)
	}
	defer pool.Close()
	store := postgres.NewRepository(pool, metrics.NewPostgresRepository(cfg.Network))

	var journal recorder
	if cfg.ClickhouseDSN != "" {
		j, err := clickhouse.NewJournal(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository(cfg.Network), logger, batcher.Config{
			Size:     cfg.JournalBatchSize,
			Interval: cfg.JournalFlushInterval,
		})
		if err != nil {
			return fmt.Errorf("init journal: %w", err)
		}
		j.Start(ctx)
		defer func() {
			if err := j.Close(); err != nil {
				logger.Error("failed to close journal", zap.Error(err))
			}
		}()
		journal = j
	}

	redisClient, err := pubsub.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer func() {
		_ = redisClient.Close()
	}()
	pub, err := pubsub.NewPublisher(redisClient, logger)
	if err != nil {
		return err
	}
	notifier, err := notify.NewPublisher(pub, notify.Topics{
		Block:       cfg.BlockTopic,
		Transaction: cfg.TransactionTopic,
	}, metrics.NewPublisher(cfg.Network), logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = notifier.Close()
	}()
	sub, err := pubsub.NewSubscriber(redisClient, cfg.PushTxGroup, logger)
	if err != nil {
		return err
	}

	dedup := cache.NewDedup(cfg.CacheSize, cfg.CacheMaxAge)
	filter := relevance.NewFilter(store, dedup, logger, relevance.Config{})
	processor := block.NewProcessor(filter, store, dedup, notifier, journal, metrics.NewBlockProcessor(cfg.Network), logger)

	g, ctx := errgroup.WithContext(ctx)

	var blocks chainsync.BlockProcessor = processor
	if cfg.BlockWorker {
		worker := blockworker.New(filter, processor, logger)
		g.Go(func() error {
			return worker.Run(ctx)
		})
		blocks = worker
	}

	chainSvc, err := chainsync.NewService(node, store, blocks, journal, metrics.NewChainSync(cfg.Network), logger, chainsync.Config{
		IBDThreshold:    cfg.IBDThreshold,
		BootstrapHeight: cfg.BootstrapHeight,
	})
	if err != nil {
		return err
	}
	mempoolSvc, err := mempool.NewService(node, decoder, store, filter, dedup, notifier, journal, metrics.NewMempool(cfg.Network), logger, mempool.Config{
		MempoolInterval:     cfg.MempoolInterval,
		UnconfirmedInterval: cfg.UnconfirmedInterval,
		BootstrapHeight:     cfg.BootstrapHeight,
		ActiveTolerance:     cfg.MempoolTolerance,
	})
	if err != nil {
		return err
	}

	pushed, err := pushtx.NewListener(sub, cfg.PushTxTopics, mempoolSvc, metrics.NewSubscriber(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init pushtx listener: %w", err)
	}
	defer func() {
		_ = pushed.Close()
	}()

	zmqMetrics := metrics.NewZMQ(cfg.Network)
	blockSub, err := zmq.Dial(cfg.ZMQBlockEndpoint, zmq.TopicHashBlock, cfg.ZMQPollTimeout, zmqMetrics, logger)
	if err != nil {
		return err
	}
	txSub, err := zmq.Dial(cfg.ZMQTxEndpoint, zmq.TopicRawTx, cfg.ZMQPollTimeout, zmqMetrics, logger)
	if err != nil {
		return err
	}

	hashes := make(chan string, 16)
	rawTxs := make(chan []byte, 1024)

	g.Go(func() error {
		return blockSub.BlockHashes(ctx, hashes)
	})
	g.Go(func() error {
		return txSub.RawTransactions(ctx, rawTxs)
	})
	g.Go(func() error {
		return chainSvc.Run(ctx, hashes)
	})
	g.Go(func() error {
		return mempoolSvc.Run(ctx, rawTxs)
	})
	g.Go(func() error {
		return pushed.Run(ctx)
	})

	logger.Info("tracker started")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

// rpcConfig builds an HTTP POST connection config; batched getrawtransaction needs it.
func rpcConfig(rawURL, user, password string) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil
}
