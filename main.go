package main

import "github.com/zero-sh/zerosh/cmd"

func main() {
	cmd.Execute()
}
