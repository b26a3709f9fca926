package main

import "github.com/naka-gawa/portfolio-projects/cmd"

func main() {
	cmd.Execute()
}
