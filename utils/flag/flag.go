/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	FeedCli   = "feed_cli"
	DevServer = "dev_server"
)

var (
	IsDevelopment *bool
	ServiceName   *string
)

func init() {
	IsDevelopment = flag.Bool("dev", true, "set to true if the current run is for development. default value is true")
	ServiceName = flag.String("service", FeedCli, "'feed_cli' or 'dev_server'")
}

// Parse parses the command line. Call from main, never from init, so test
// binaries can register their own flags first.
func Parse() {
	flag.Parse()
}
