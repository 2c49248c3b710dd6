package main

import "github.com/tristendillon/stubgen/cmd"

func main() {
	cmd.Execute()
}
