// Package main is the entrypoint of the tukangkomik command line
package main

import "github.com/diogovalentte/tukangkomik/src/cli"

func main() {
	cli.Execute()
}
