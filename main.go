package main

import (
	"flag"
	"log"

	"github.com/vigiehq/vigie-backend/cmd"
)

func main() {
	shouldRunServer := flag.Bool("server", false, "Run the screening API server")
	shouldValidateWatchlists := flag.Bool("validate-watchlists", false, "Parse the watchlist store once and exit")
	flag.Parse()

	var err error
	switch {
	case *shouldRunServer:
		err = cmd.RunServer()
	case *shouldValidateWatchlists:
		err = cmd.RunValidateWatchlists()
	default:
		log.Fatal("expected one of -server or -validate-watchlists")
	}
	if err != nil {
		log.Fatal(err)
	}
}
