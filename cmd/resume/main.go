package main

import "github.com/more-shubham/resume/internal/cli"

func main() {
	cli.Execute()
}
