package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
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

// parseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-u/-base-url REST API base URL
//	-t/-request-timeout outbound request timeout (e.g., "15s")
//	-cap initial number of posts in the list
//	-users-cap number of users in the users panel
//	-refresh post list refresh interval (e.g., "1m"), 0 disables it
//	-a stub server address in format [host]:[port]
//	-grpc-address stub gRPC health address in format [host]:[port]
//	-server-timeout stub server request timeout
//	-d stub database DSN
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var baseURL string
	var requestTimeout, serverTimeout, refreshInterval time.Duration
	var displayCap, usersCap int
	var databaseDSN string
	var jsonConfigPath string

	fs := flag.NewFlagSet("post-board", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "u", "", "REST API base URL")
	fs.StringVar(&baseURL, "base-url", "", "REST API base URL (alias)")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (alias)")
	fs.IntVar(&displayCap, "cap", 0, "Initial number of posts shown")
	fs.IntVar(&usersCap, "users-cap", 0, "Number of users shown")
	fs.DurationVar(&refreshInterval, "refresh", 0, "Post list refresh interval, 0 disables")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Feed: Feed{
			DisplayCap: displayCap,
			UsersCap:   usersCap,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
