package main

import "github.com/itayornshtein-jpg/itay-logs-reviewer/cmd"

func main() {
	cmd.Execute()
}
