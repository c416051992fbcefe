package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]; the client dials the same address
//	-driver database driver (sqlite or postgres)
//	-d database DSN
//	-c/-config json file path with configs
//	-session-transport session carriage (token or cookie)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-cookie-auth-key session cookie authentication key
//	-cookie-encryption-key session cookie encryption key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-gallery gallery catalog YAML file path
//	-s3-bucket bucket holding gallery documents
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var driver string
	var databaseDSN string
	var jsonConfigPath string
	var sessionTransport string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var cookieAuthKey string
	var cookieEncryptionKey string
	var requestTimeout time.Duration
	var hashKey string
	var catalogPath string
	var s3Bucket string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&driver, "driver", "", "Database driver (sqlite, postgres)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionTransport, "session-transport", "", "Session transport (token, cookie)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&cookieAuthKey, "cookie-auth-key", "", "Session cookie authentication key")
	flag.StringVar(&cookieEncryptionKey, "cookie-encryption-key", "", "Session cookie encryption key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	flag.StringVar(&catalogPath, "gallery", "", "Gallery catalog YAML file path")
	flag.StringVar(&s3Bucket, "s3-bucket", "", "Bucket holding gallery documents")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTransport:    sessionTransport,
			TokenSignKey:        tokenSignKey,
			TokenIssuer:         tokenIssuer,
			TokenDuration:       tokenDuration,
			CookieAuthKey:       cookieAuthKey,
			CookieEncryptionKey: cookieEncryptionKey,
			HashKey:             hashKey,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Gallery: Gallery{
			CatalogPath: catalogPath,
			S3Bucket:    s3Bucket,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
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
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
