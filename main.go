package main

import "github.com/khanhnv2901/pqcheck/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
