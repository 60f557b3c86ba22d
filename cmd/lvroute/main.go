// Command lvroute serves shortest routes over an OpenStreetMap extract.
//
//	lvroute serve --config lvroute.yaml
//	lvroute route --config lvroute.yaml -- -122.2580 37.8711 -122.2580 37.8699
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sc
		fmt.Fprintf(os.Stderr, "\nGot signal [%v], shutting down; press ^C again to force exit\n", sig)
		cancel()
		<-sc
		os.Exit(1)
	}()

	root := newRootCommand()
	root.SetOut(os.Stdout)
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1) // nolint:gocritic
	}
}
