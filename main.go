package main

import "github.com/vitrinehq/vitrine-backend/cmd"

func main() {
	cmd.Init()
}
