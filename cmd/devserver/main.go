package main

import (
	"os"

	"github.com/atelier-play/lookfeed/devserver"
	"github.com/atelier-play/lookfeed/utils/dotenv"
	"github.com/atelier-play/lookfeed/utils/flag"
	Logger "github.com/atelier-play/lookfeed/utils/log"
)

// devserver runs the fake post service with a seeded feed, for developing
// the client against a local endpoint.
func main() {
	flag.Parse()
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	addr := os.Getenv("LOOKFEED_DEVSERVER_ADDR")
	if addr == "" {
		addr = ":4000"
	}

	router := devserver.NewRouter(devserver.NewSeededStore())

	Logger.Log.Infof("dev post service starts up on %s", addr)
	if err := router.Run(addr); err != nil {
		Logger.Log.Fatalf("dev post service exited: %v", err)
	}
}
