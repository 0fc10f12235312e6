package main

import "github.com/duosh/duosh/cmd"

func main() {
	cmd.Execute()
}
