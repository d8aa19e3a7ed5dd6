package main

import "airbnb-dashboard/cmd"

func main() {
	cmd.Execute()
}
