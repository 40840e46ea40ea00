package main

import "github.com/douhashi/buildutils/cmd"

func main() {
	cmd.Execute()
}
