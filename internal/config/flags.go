package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

var errPortOutOfRange = errors.New("port must be within 1..65535")

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-snapshot-backend snapshot backend (file|s3)
//	-snapshot-dir base directory of the file snapshot backend
//	-snapshot-bucket s3 bucket of the s3 snapshot backend
//	-redis redis address
//	-queue queue backend (sqs|local)
//	-queue-url sqs queue url
//	-queue-path bolt file of the local queue
//	-workers start the apply runtime in-process
//	-concurrency number of queue pollers
//	-push-url push gateway url
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-db-journal", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var snapshotBackend, snapshotDir, snapshotBucket string
	var redisAddress NetAddress
	var queueBackend, queueURL, queuePath string
	var workersEnabled bool
	var concurrency int
	var pushURL, logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&snapshotBackend, "snapshot-backend", "", "Snapshot backend (file|s3)")
	fs.StringVar(&snapshotDir, "snapshot-dir", "", "Snapshot base directory")
	fs.StringVar(&snapshotBucket, "snapshot-bucket", "", "Snapshot s3 bucket")
	fs.Var(&redisAddress, "redis", "Redis address host:port")
	fs.StringVar(&queueBackend, "queue", "", "Queue backend (sqs|local)")
	fs.StringVar(&queueURL, "queue-url", "", "SQS queue url")
	fs.StringVar(&queuePath, "queue-path", "", "Local queue file")
	fs.BoolVar(&workersEnabled, "workers", false, "Run the apply runtime in-process")
	fs.IntVar(&concurrency, "concurrency", 0, "Number of queue pollers")
	fs.StringVar(&pushURL, "push-url", "", "Push gateway url")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Snapshots: Snapshots{
				Backend: snapshotBackend,
				BaseDir: snapshotDir,
				Bucket:  snapshotBucket,
			},
		},
		Redis: Redis{Address: redisAddress.String()},
		Queue: Queue{
			Backend:   queueBackend,
			SQSURL:    queueURL,
			LocalPath: queuePath,
		},
		Workers: Workers{
			Enabled:     workersEnabled,
			Concurrency: concurrency,
		},
		Notify: Notify{PushURL: pushURL},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address in host:port form, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port, [ipv6]:port or :port. Hosts may be names, so
// container service names such as "redis:6379" are valid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q is not a number", rawPort)
	}
	if port < 1 || port > 65535 {
		return errPortOutOfRange
	}
	if strings.ContainsAny(host, " /") {
		return fmt.Errorf("invalid host %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
