package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/newsgate/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session token HMAC secret key
//	-t int      session validity, minutes (default 30)
//	-k int      keep-signed session validity, days (default 365)
//	-secure     use the __Secure- session cookie variant
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-k", "-secure"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")
	keepSignedValidity := fs.Int("k", int(config.KeepSignedValidityDuration.Hours()/24), "keep_signed_validity_duration (in days)")

	fs.BoolVar(&config.SecureCookies, "secure", config.SecureCookies, "use secure session cookies")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
	config.KeepSignedValidityDuration = time.Duration(*keepSignedValidity) * 24 * time.Hour
}
