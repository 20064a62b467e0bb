package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"pixview/internal/app"
	"pixview/internal/config"
	"pixview/internal/imageio"
	"pixview/internal/platform/ebitenwin"
)

func main() {
	opts, err := config.ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixview: %v\n", err)
		os.Exit(2)
	}

	path := opts.ImagePath
	if path == "" {
		path, err = imageio.PickFile()
		if err != nil {
			log.Printf("file dialog: %v", err)
		}
	}

	application, err := app.New(opts.Config, ebitenwin.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixview failed: %v\n", err)
		os.Exit(1)
	}
	if err := application.SetImage(path); err != nil && !errors.Is(err, imageio.ErrNoPath) {
		log.Printf("load image: %v", err)
	}
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pixview failed: %v\n", err)
		os.Exit(1)
	}
}
