package main

import "github.com/frahmantamala/attendance-system/cmd"

func main() {
	cmd.Execute()
}
