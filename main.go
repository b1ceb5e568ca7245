package main

import "github.com/papapumpkin/surfer/cmd"

func main() {
	cmd.Execute()
}
