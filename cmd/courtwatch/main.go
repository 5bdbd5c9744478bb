package main

import "github.com/liangyc/courtwatch/internal/cli"

func main() {
	cli.Execute()
}
