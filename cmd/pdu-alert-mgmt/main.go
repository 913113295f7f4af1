package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/alerting"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/correlation"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/maintenance"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/thresholds"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/application/watchdog"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/router"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/infrastructure/storage"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/internal/pkg/presentation/api"
	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"
)

const serviceName string = "pdu-alert-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	correlationURL
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/pdumonitor/config/authz.rego",
		configurationFile: "/opt/pdumonitor/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "pdumonitor",
		dbSSLMode:  "disable",

		correlationURL: "",
	}
}

type appConfig struct {
	Thresholds  []types.ThresholdConfig `yaml:"thresholds"`
	Alerting    alertingConfig          `yaml:"alerting"`
	Correlation correlationConfig       `yaml:"correlation"`
}

type alertingConfig struct {
	CycleInterval    string `yaml:"cycle_interval"`
	StaleAfterCycles int    `yaml:"stale_after_cycles"`
}

type correlationConfig struct {
	Interval string `yaml:"interval"`
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	err = storage.SeedThresholds(ctx, s, cfg.Thresholds)
	exitIf(err, logger, "could not seed default thresholds")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	cycleInterval := parseDurationOrDefault(ctx, cfg.Alerting.CycleInterval, time.Minute)

	cache := alerting.NewStateCache()
	thresholdSvc := thresholds.New(s)
	maintSvc := maintenance.New(s, messenger, cache)
	alertSvc := alerting.New(s, messenger, thresholdSvc, maintSvc, cache)

	err = maintSvc.Refresh(ctx)
	exitIf(err, logger, "could not load maintenance suppression state")

	messenger.Start()

	err = alertSvc.RegisterTopicMessageHandlers(ctx)
	exitIf(err, logger, "failed to register topic message handlers")

	wd := watchdog.New(alertSvc, watchdog.Config{
		CycleInterval:    cycleInterval,
		StaleAfterCycles: cfg.Alerting.StaleAfterCycles,
	})
	wd.Start(ctx)
	defer wd.Stop(ctx)

	outbox := correlation.NewWorker(s, correlation.NewClient(flags[correlationURL]),
		parseDurationOrDefault(ctx, cfg.Correlation.Interval, 30*time.Second))
	outbox.Start(ctx)
	defer outbox.Stop(ctx)

	go evictLoop(ctx, cache)

	r := router.New(serviceName)
	_, err = api.RegisterHandlers(ctx, r, policies, alertSvc, maintSvc, thresholdSvc, cache)
	exitIf(err, logger, "failed to register handlers")

	apiPort := flags[servicePort]
	logger.Info("starting to listen for incoming connections", "port", apiPort)

	webServer := &http.Server{Addr: flags[listenAddress] + ":" + apiPort, Handler: r}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		webServer.Shutdown(shutdownCtx)
	}()

	err = webServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		exitIf(err, logger, "failed to start request router")
	}
}

// evictLoop drops racks from the view cache when no reading has arrived for
// a day, so decommissioned equipment eventually leaves the views.
func evictLoop(ctx context.Context, cache *alerting.StateCache) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cache.Evict(time.Now().UTC().Add(-24 * time.Hour))
		}
	}
}

func parseExternalConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])
	flags[configurationFile] = envOrDef(ctx, "CONFIGURATION_FILE", flags[configurationFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[correlationURL] = envOrDef(ctx, "CORRELATION_URL", flags[correlationURL])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func parseDurationOrDefault(ctx context.Context, value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		logging.GetFromContext(ctx).Warn("invalid duration in configuration, using default",
			"value", value, "default", def.String())
		return def
	}

	return d
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
