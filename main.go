package main

import (
	"github.com/dotcommander/ftype/cmd"
	"github.com/dotcommander/ftype/internal/config"
)

func main() {
	config.SetDefaults()
	cmd.Execute()
}
