package main

import "github.com/ccm2020/home-assistant/cmd"

func main() {
	cmd.Execute()
}
