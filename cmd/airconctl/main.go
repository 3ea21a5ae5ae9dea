// airconctl - ECHONET Lite air-conditioner controller
//
// This is the command-line entry point for aircon-core. It discovers a
// home air conditioner on the local network via ECHONET Lite multicast,
// then runs exactly one of three commands against it:
//   - off:  turn the unit off
//   - on:   query sensors and turn the unit on if a comfort rule matches
//   - info: query sensors and print the readings
//
// Optional integrations (MQTT, InfluxDB, local history) activate through
// the configuration file; without one the tool is a bare command sender.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/aircon-core/internal/aircon"
	"github.com/nerrad567/aircon-core/internal/echonet"
	"github.com/nerrad567/aircon-core/internal/history"
	"github.com/nerrad567/aircon-core/internal/infrastructure/config"
	"github.com/nerrad567/aircon-core/internal/infrastructure/database"
	"github.com/nerrad567/aircon-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/aircon-core/internal/infrastructure/logging"
	"github.com/nerrad567/aircon-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/aircon-core/internal/policy"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// Recognised commands.
const (
	cmdOff  = "off"
	cmdOn   = "on"
	cmdInfo = "info"
)

func main() {
	// Validate the command line before touching the network.
	command, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "usage: %s %s|%s|%s\n", programName(), cmdOff, cmdOn, cmdInfo)
		os.Exit(1)
	}

	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, command); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs validates the command-line arguments.
//
// Exactly one argument is accepted and it must be one of the recognised
// commands. Anything else is an error; no network traffic has happened
// yet at this point.
//
// Parameters:
//   - args: Command-line arguments excluding the program name
//
// Returns:
//   - string: The validated command
//   - error: Description of the usage error
func parseArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one command, got %d", len(args))
	}

	switch args[0] {
	case cmdOff, cmdOn, cmdInfo:
		return args[0], nil
	}

	return "", fmt.Errorf("unknown command %q", args[0])
}

// programName returns the invoked binary name for usage messages.
func programName() string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}
	return "airconctl"
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - command: Validated command (off, on, or info)
//
// Returns:
//   - error: nil on success, or error describing failure
func run(ctx context.Context, command string) error {
	// Load configuration. The file is optional; defaults keep every
	// integration disabled.
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr by default; stdout is reserved for info output.
	log := logging.New(cfg.Logging, version)
	log.Debug("starting airconctl",
		"version", version,
		"commit", commit,
		"build_date", date,
		"command", command,
	)

	// Wire the protocol stack.
	transport := echonet.NewTransport()
	transport.SetLogger(log)
	sensors := aircon.NewSensorClient(cfg.SensorTimeout())
	session := aircon.NewSession(transport, sensors)

	// Open optional integrations. Failures here degrade the tool, they
	// never stop it: the air conditioner still gets its command.
	ints := openIntegrations(cfg, log)
	defer ints.close(log)

	// Discover the air conditioner. The wait is unbounded unless a
	// discovery timeout is configured.
	discoverCtx := ctx
	if timeout := cfg.DiscoveryTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		discoverCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Info("discovering air conditioner")
	host, err := session.Discover(discoverCtx)
	if err != nil {
		return fmt.Errorf("discovering air conditioner: %w", err)
	}
	log.Info("air conditioner found", "host", host)
	ints.publishDiscovery(host, log)

	switch command {
	case cmdOff:
		return runOff(session, host, ints, log)
	case cmdOn:
		return runOn(ctx, session, host, ints, log)
	case cmdInfo:
		return runInfo(ctx, session, host, ints, log)
	}

	// Unreachable; parseArgs already rejected anything else.
	return fmt.Errorf("unknown command %q", command)
}

// runOff turns the unit off.
func runOff(session *aircon.Session, host string, ints *integrations, log *logging.Logger) error {
	if err := session.TurnOff(host); err != nil {
		return fmt.Errorf("turning off: %w", err)
	}
	log.Info("turn off sent", "host", host)
	ints.publishCommand(host, cmdOff, nil, log)
	return nil
}

// runOn queries the sensors and turns the unit on when a comfort rule
// matches the readings. No rule matching is a normal outcome, not an
// error.
func runOn(ctx context.Context, session *aircon.Session, host string, ints *integrations, log *logging.Logger) error {
	info, err := session.GetInfo(ctx, host)
	if err != nil {
		return fmt.Errorf("querying sensors: %w", err)
	}
	ints.recordReadings(ctx, host, info, log)

	action, ok := policy.Decide(info)
	if !ok {
		log.Info("no comfort rule matched, leaving unit as is", "host", host)
		return nil
	}

	if err := session.TurnOn(host, action.Mode, action.Setpoint); err != nil {
		return fmt.Errorf("turning on: %w", err)
	}
	log.Info("turn on sent",
		"host", host,
		"mode", action.Mode.String(),
		"setpoint", action.Setpoint.String(),
	)
	ints.publishCommand(host, cmdOn, map[string]any{
		"mode":     action.Mode.String(),
		"setpoint": action.Setpoint.String(),
	}, log)
	return nil
}

// runInfo queries the sensors and prints the readings to stdout, one
// key=value pair per line in sorted key order.
func runInfo(ctx context.Context, session *aircon.Session, host string, ints *integrations, log *logging.Logger) error {
	info, err := session.GetInfo(ctx, host)
	if err != nil {
		return fmt.Errorf("querying sensors: %w", err)
	}
	ints.recordReadings(ctx, host, info, log)

	for _, key := range info.Keys() {
		fmt.Printf("%s=%s\n", key, info[key].String())
	}
	return nil
}

// getConfigPath returns the configuration file path.
// Uses AIRCON_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("AIRCON_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// integrations bundles the optional MQTT, InfluxDB and history outputs.
// Any of the fields may be nil when the integration is disabled or its
// startup failed; every method tolerates that.
type integrations struct {
	mqtt   *mqtt.Client
	influx *influxdb.Client
	store  *history.Store
	db     *database.DB
	topics mqtt.Topics
}

// openIntegrations connects whichever optional integrations the
// configuration enables. A failed integration logs a warning and stays
// nil; it never aborts the command.
func openIntegrations(cfg *config.Config, log *logging.Logger) *integrations {
	ints := &integrations{}

	if cfg.MQTT.Enabled {
		client, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			log.Warn("MQTT unavailable, continuing without it", "error", err)
		} else {
			ints.mqtt = client
			log.Info("MQTT connected",
				"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
				"client_id", client.ClientID(),
			)
		}
	}

	if cfg.InfluxDB.Enabled {
		client, err := influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			log.Warn("InfluxDB unavailable, continuing without it", "error", err)
		} else {
			client.SetOnError(func(err error) {
				log.Error("InfluxDB write error", "error", err)
			})
			ints.influx = client
			log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)
		}
	}

	if cfg.History.Enabled {
		db, err := database.Open(database.Config{
			Path:        cfg.History.Path,
			WALMode:     cfg.History.WALMode,
			BusyTimeout: cfg.History.BusyTimeout,
		})
		if err != nil {
			log.Warn("history database unavailable, continuing without it", "error", err)
		} else {
			store := history.NewStore(db.DB)
			if err := store.Init(context.Background()); err != nil {
				log.Warn("history schema init failed, continuing without it", "error", err)
				_ = db.Close()
			} else {
				ints.db = db
				ints.store = store
				log.Info("history database open", "path", cfg.History.Path)
			}
		}
	}

	return ints
}

// close shuts down whatever was opened, flushing pending writes.
func (i *integrations) close(log *logging.Logger) {
	if i.influx != nil {
		if err := i.influx.Close(); err != nil {
			log.Error("error closing InfluxDB", "error", err)
		}
	}
	if i.mqtt != nil {
		if err := i.mqtt.Close(); err != nil {
			log.Error("error closing MQTT", "error", err)
		}
	}
	if i.db != nil {
		if err := i.db.Close(); err != nil {
			log.Error("error closing history database", "error", err)
		}
	}
}

// publishDiscovery announces the discovered device address on the bus.
func (i *integrations) publishDiscovery(host string, log *logging.Logger) {
	if i.mqtt == nil {
		return
	}
	payload := fmt.Sprintf(`{"host":%q}`, host)
	if err := i.mqtt.Publish(i.topics.Discovery(), []byte(payload), 0, false); err != nil {
		log.Warn("publishing discovery failed", "error", err)
	}
}

// publishCommand announces an issued command on the bus.
func (i *integrations) publishCommand(host, action string, fields map[string]any, log *logging.Logger) {
	if i.mqtt == nil {
		return
	}
	if err := i.mqtt.PublishCommand(host, action, fields); err != nil {
		log.Warn("publishing command failed", "error", err)
	}
}

// recordReadings fans a sensor snapshot out to every enabled sink:
// retained MQTT state, InfluxDB points for numeric readings, and the
// local history store.
func (i *integrations) recordReadings(ctx context.Context, host string, info aircon.SensorInfo, log *logging.Logger) {
	if i.mqtt != nil {
		if err := i.mqtt.PublishState(host, readingsMap(info)); err != nil {
			log.Warn("publishing sensor state failed", "error", err)
		}
	}

	if i.influx != nil {
		for _, key := range info.Keys() {
			if f, ok := info.Float(key); ok {
				i.influx.WriteReading(host, key, f)
			}
		}
	}

	if i.store != nil {
		if err := i.store.Record(ctx, host, info); err != nil {
			log.Warn("recording sensor history failed", "error", err)
		}
	}
}

// readingsMap converts a sensor snapshot into native JSON-friendly values.
func readingsMap(info aircon.SensorInfo) map[string]any {
	out := make(map[string]any, len(info))
	for _, key := range info.Keys() {
		v := info[key]
		switch v.Kind() {
		case aircon.KindInt:
			n, _ := v.Int()
			out[key] = n
		case aircon.KindFloat:
			f, _ := v.Float()
			out[key] = f
		default:
			s, _ := v.Text()
			out[key] = s
		}
	}
	return out
}
