package main

import "github.com/Rorical/eventlist/cmd"

func main() {
	cmd.Execute()
}
