//go:build cli
// +build cli

package main

import (
	"companion.GO/cmd"
	"companion.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
