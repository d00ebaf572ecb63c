package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/newsgate/internal/cli"
	"github.com/dmitrijs2005/newsgate/internal/server/config"
)

func main() {

	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <adduser|addnews>", os.Args[0])
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx, os.Args[1]); err != nil {
		log.Fatalf("%v", err)
	}

}
