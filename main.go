package main

import "dropbuddy/cmd"

func main() {
	cmd.Execute()
}
