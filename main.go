package main

import "hotel-loyalty/cmd"

func main() {
	cmd.Execute()
}
