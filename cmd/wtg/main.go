package main

import "github.com/jtarrant/wanttogo/internal/cli"

func main() {
	cli.Execute()
}
