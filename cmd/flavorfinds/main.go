package main

import "github.com/flavorfinds/flavorfinds/pkg/cli"

func main() {
	cli.Execute()
}
