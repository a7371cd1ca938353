package main

import "github.com/malakstore/souq/internal/cmd"

func main() {
	cmd.Execute()
}
