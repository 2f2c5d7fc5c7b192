package main

import "clubroster/cmd"

func main() {
	cmd.Execute()
}
