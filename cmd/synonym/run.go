// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/synonym/src/cli"
	"github.com/H0llyW00dzZ/synonym/src/logger"
	verpkg "github.com/H0llyW00dzZ/synonym/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() { os.Exit(run()) }

// run executes the CLI and maps its outcome to a process exit code.
func run() int {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		return 130 // Standard exit code for SIGINT
	}
}
