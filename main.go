package main

import "github.com/EMinsight/lsmtoolbox/cmd"

func main() {
	cmd.Execute()
}
