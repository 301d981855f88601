package main

import "github.com/Girgetto/iracing-pitwall-tui/cmd"

func main() {
	cmd.Execute()
}
