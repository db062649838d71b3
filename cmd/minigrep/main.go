package main

import (
	"os"

	"github.com/seabearDEV/minigrep-go/internal/cli"
)

// Set at build time:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse --short HEAD)"
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version, cli.Commit = version, commit
	args := os.Args[1:]
	if args == nil {
		args = []string{}
	}
	os.Exit(cli.Execute(args, os.Stdout, os.Stderr))
}
