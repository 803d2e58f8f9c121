package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments into a partial [StructuredConfig].
// Unset flags leave their fields zero so that lower-priority sources win.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-u queue server address used by the client
//	-api-prefix path prefix of the queue API
//	-activity activity identifier to queue for
//	-user user identifier override
//	-device device identifier override
//	-log-file client log file path
//	-max-retries consecutive poll failures before giving up
//	-retry-base-delay first backoff delay (e.g. "1s")
//	-poll-interval default poll interval (e.g. "2s")
//	-request-timeout request timeout (e.g. "10s")
//	-d database DSN
//	-release-interval release worker tick (e.g. "1s")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var apiPrefix string
	var activityID, userIdentifier, deviceIdentifier, logFile string
	var maxRetries int
	var retryBaseDelay, pollInterval, requestTimeout time.Duration
	var databaseDSN string
	var releaseInterval time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "u", "", "Queue server address")
	fs.StringVar(&apiPrefix, "api-prefix", "", "Queue API path prefix")
	fs.StringVar(&activityID, "activity", "", "Activity identifier")
	fs.StringVar(&userIdentifier, "user", "", "User identifier override")
	fs.StringVar(&deviceIdentifier, "device", "", "Device identifier override")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.IntVar(&maxRetries, "max-retries", 0, "Consecutive poll failures before giving up")
	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "First backoff delay (e.g., 1s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Default poll interval (e.g., 2s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&releaseInterval, "release-interval", 0, "Release worker tick (e.g., 1s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ActivityID:       activityID,
			UserIdentifier:   userIdentifier,
			DeviceIdentifier: deviceIdentifier,
			LogFile:          logFile,
		},
		Queue: Queue{
			MaxRetries:          maxRetries,
			RetryBaseDelay:      retryBaseDelay,
			DefaultPollInterval: pollInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			APIPrefix:      apiPrefix,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers:      Workers{ReleaseInterval: releaseInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "waitroom"
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
