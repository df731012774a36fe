/******************************************************************************
 *
 *  Description :
 *
 *  Setup & initialization.
 *
 *****************************************************************************/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/chatwire/chat/server/auth"
	_ "github.com/chatwire/chat/server/auth/token"
	"github.com/chatwire/chat/server/authz"
	"github.com/chatwire/chat/server/bridge"
	_ "github.com/chatwire/chat/server/db/mysql"
	_ "github.com/chatwire/chat/server/db/postgres"
	"github.com/chatwire/chat/server/hooks"
	"github.com/chatwire/chat/server/hub"
	"github.com/chatwire/chat/server/logs"
	"github.com/chatwire/chat/server/notify"
	"github.com/chatwire/chat/server/store"
	"github.com/tinode/jsonco"
	"golang.org/x/sync/errgroup"
)

const (
	// Terminate the session if no pong arrives within this timeout.
	defaultIdleTimeout = 55 * time.Second

	// Max size of an inbound frame in bytes.
	defaultMaxMessageSize = 1 << 16

	// Max length of a chat message in grapheme clusters.
	defaultMaxMessageLength = 4096

	// Size of the outbound queue of a session.
	defaultSendQueueSize = 128

	// Time to wait for room in a full outbound queue.
	defaultDeliveryTimeout = 50 * time.Millisecond

	// Inbound rate limit.
	defaultInboundRate  = 10.0
	defaultInboundBurst = 20

	// Time to wait for open connections to finish on shutdown.
	shutdownTimeout = 5 * time.Second

	defaultAuthScheme = "token"
)

// Build version number defined by the compiler:
//
//	-ldflags "-X main.buildstamp=value_to_assign_to_buildstamp"
//
// Reported at /healthz.
var buildstamp = "undef"

var globals struct {
	// Topic subscriptions.
	registry *hub.Registry
	// Live sessions.
	sessionStore *SessionStore
	// Join-time authorization.
	gate *authz.Gate
	// Identity of connecting clients.
	resolver auth.Resolver
	// Prometheus metrics.
	stats *statsCollector
	// Cross-node relay, nil when running standalone.
	relay *bridge.Relay

	// Websocket settings.
	idleTimeout      time.Duration
	maxMessageSize   int64
	maxMessageLength int
	sendQueueSize    int
	deliveryTimeout  time.Duration
	inboundRate      float64
	inboundBurst     int
	allowedOrigins   map[string]bool
	useXForwardedFor bool
}

type rateConfig struct {
	PerSecond float64 `json:"per_second"`
	Burst     int     `json:"burst"`
}

type wsConfig struct {
	// Seconds without a pong before the connection is dropped.
	IdleTimeout int `json:"idle_timeout"`
	// Max size of an inbound frame in bytes.
	MaxMessageSize int64 `json:"max_message_size"`
	// Max length of a chat message in grapheme clusters.
	MaxMessageLength int `json:"max_message_length"`
	SendQueueSize    int `json:"send_queue_size"`
	// Milliseconds to wait for room in a full outbound queue.
	DeliveryTimeout int        `json:"delivery_timeout"`
	InboundRate     rateConfig `json:"inbound_rate"`
	// Origins allowed to connect. Empty means any.
	AllowedOrigins []string `json:"allowed_origins"`
	// Take the client address from the X-Forwarded-For header.
	UseXForwardedFor bool `json:"use_x_forwarded_for"`
}

type clusterConfig struct {
	Redis *bridge.Config `json:"redis"`
}

type mutationsConfig struct {
	Kafka *hooks.Config `json:"kafka"`
}

// Contents of the configuration file
type configType struct {
	// HTTP listen address, :6060 by default.
	Listen string `json:"listen"`
	// URL path for exposing Prometheus metrics. Empty or "-" disables it.
	MetricsPath string `json:"metrics_path"`
	// URL path for exposing runtime profiles, disabled when empty.
	PprofPath string `json:"pprof_url"`
	// Snowflake worker ID, 0..1023.
	WorkerID int `json:"worker_id"`

	WS      wsConfig    `json:"ws"`
	Logging logs.Config `json:"logging"`

	// Name of the identity resolver to use.
	UseAuth string `json:"use_auth"`
	// Configs of identity resolvers, by name.
	Auth map[string]json.RawMessage `json:"auth_config"`

	StoreConfig json.RawMessage `json:"store_config"`

	// Optional cross-node relay.
	Cluster *clusterConfig `json:"cluster"`
	// Optional ingest of mutations made by other processes.
	Mutations *mutationsConfig `json:"mutations"`
}

func parseConfig(path string) (*configType, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config configType
	jr := jsonco.New(file)
	if err = json.NewDecoder(jr).Decode(&config); err != nil {
		switch jerr := err.(type) {
		case *json.UnmarshalTypeError:
			lnum, cnum, _ := jr.LineAndChar(jerr.Offset)
			return nil, errors.New("config: unmarshal error at " + path + ":" +
				itoa(lnum) + ":" + itoa(cnum) + " (offset " + i64toa(jerr.Offset) + "): " + jerr.Error())
		case *json.SyntaxError:
			lnum, cnum, _ := jr.LineAndChar(jerr.Offset)
			return nil, errors.New("config: syntax error at " + path + ":" +
				itoa(lnum) + ":" + itoa(cnum) + " (offset " + i64toa(jerr.Offset) + "): " + jerr.Error())
		default:
			return nil, err
		}
	}
	return &config, nil
}

// applyWsConfig copies websocket settings to globals, replacing zeros with defaults.
func applyWsConfig(conf *wsConfig) {
	globals.idleTimeout = defaultIdleTimeout
	if conf.IdleTimeout > 0 {
		globals.idleTimeout = time.Duration(conf.IdleTimeout) * time.Second
	}
	globals.maxMessageSize = defaultMaxMessageSize
	if conf.MaxMessageSize > 0 {
		globals.maxMessageSize = conf.MaxMessageSize
	}
	globals.maxMessageLength = defaultMaxMessageLength
	if conf.MaxMessageLength > 0 {
		globals.maxMessageLength = conf.MaxMessageLength
	}
	globals.sendQueueSize = defaultSendQueueSize
	if conf.SendQueueSize > 0 {
		globals.sendQueueSize = conf.SendQueueSize
	}
	globals.deliveryTimeout = defaultDeliveryTimeout
	if conf.DeliveryTimeout > 0 {
		globals.deliveryTimeout = time.Duration(conf.DeliveryTimeout) * time.Millisecond
	}
	globals.inboundRate = defaultInboundRate
	if conf.InboundRate.PerSecond > 0 {
		globals.inboundRate = conf.InboundRate.PerSecond
	}
	globals.inboundBurst = defaultInboundBurst
	if conf.InboundRate.Burst > 0 {
		globals.inboundBurst = conf.InboundRate.Burst
	}
	globals.allowedOrigins = nil
	if len(conf.AllowedOrigins) > 0 {
		globals.allowedOrigins = make(map[string]bool, len(conf.AllowedOrigins))
		for _, origin := range conf.AllowedOrigins {
			globals.allowedOrigins[origin] = true
		}
	}
	globals.useXForwardedFor = conf.UseXForwardedFor
}

// initLogging replaces the default loggers with the configured ones.
func initLogging(config *configType) error {
	return logs.Init(config.Logging)
}

// initResolver initializes the configured identity resolver.
func initResolver(config *configType) (auth.Resolver, error) {
	name := config.UseAuth
	if name == "" {
		name = defaultAuthScheme
	}
	resolver := auth.Get(name)
	if resolver == nil {
		return nil, errors.New("auth: unknown resolver '" + name + "'")
	}
	if err := resolver.Init(config.Auth[name], name); err != nil {
		return nil, err
	}
	return resolver, nil
}

func main() {
	executable, _ := os.Executable()

	var configfile = flag.String("config", "chat.conf", "Path to config file.")
	var listenOn = flag.String("listen", "", "Override address and port to listen on for HTTP(S) clients.")
	var metricsPath = flag.String("metrics_path", "", "Override URL path for exposing Prometheus metrics.")
	var pprofUrl = flag.String("pprof_url", "", "Debugging only! URL path for exposing profiling info. Disabled if empty.")
	flag.Parse()

	logs.Info.Printf("Server v%s:%s:%s; pid %d; %d process(es)",
		currentVersion, executable, buildstamp, os.Getpid(), runtime.GOMAXPROCS(runtime.NumCPU()))

	*configfile = toAbsolutePath(rootpath(), *configfile)
	logs.Info.Printf("Using config from '%s'", *configfile)

	config, err := parseConfig(*configfile)
	if err != nil {
		logs.Err.Fatal(err)
	}

	if *listenOn != "" {
		config.Listen = *listenOn
	}
	if *metricsPath != "" {
		config.MetricsPath = *metricsPath
	}
	if *pprofUrl != "" {
		config.PprofPath = *pprofUrl
	}

	if err = initLogging(config); err != nil {
		logs.Err.Fatal("Failed to configure logging: ", err)
	}
	defer logs.Sync()

	applyWsConfig(&config.WS)

	if globals.resolver, err = initResolver(config); err != nil {
		logs.Err.Fatal("Failed to init identity resolver: ", err)
	}

	if err = store.Store.Open(config.WorkerID, config.StoreConfig); err != nil {
		logs.Err.Fatal("Failed to connect to DB: ", err)
	}
	logs.Info.Println("DB adapter", store.Store.GetAdapterName())
	defer func() {
		store.Store.Close()
		logs.Info.Println("Closed database connection(s)")
	}()

	globals.stats = newStatsCollector(nil)
	globals.registry = hub.NewRegistry(hub.Options{Observer: globals.stats})
	globals.sessionStore = NewSessionStore()
	globals.gate = authz.NewGate(nil, nil)

	dispatcher := notify.NewDispatcher(globals.registry)
	store.SetHooks(dispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	grp, ctx := errgroup.WithContext(ctx)

	if config.Cluster != nil && config.Cluster.Redis != nil {
		relay, err := bridge.New(config.Cluster.Redis, globals.registry)
		if err != nil {
			logs.Err.Fatal("Failed to configure cluster relay: ", err)
		}
		globals.registry.SetRelay(relay)
		globals.relay = relay
		grp.Go(func() error {
			return relay.Run(ctx)
		})
		logs.Info.Println("Cluster relay enabled, node", relay.Node())
	}

	if config.Mutations != nil && config.Mutations.Kafka != nil {
		consumer, err := hooks.NewConsumer(config.Mutations.Kafka, dispatcher)
		if err != nil {
			logs.Err.Fatal("Failed to configure mutation ingest: ", err)
		}
		grp.Go(func() error {
			return consumer.Run(ctx)
		})
		logs.Info.Println("Consuming mutations from Kafka topic", config.Mutations.Kafka.Topic)
	}

	server := newHTTPServer(config.Listen, newRouter(config.MetricsPath, config.PprofPath))
	grp.Go(func() error {
		return listenAndServe(ctx, server)
	})

	if err := grp.Wait(); err != nil {
		logs.Err.Println("Server stopped:", err)
	}

	// Close live sessions before the store goes away.
	globals.sessionStore.Shutdown()
	globals.registry.Shutdown()
	logs.Info.Println("All done, good bye")
}
