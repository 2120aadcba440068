package main

import "github.com/jsphweid/barscribe/cmd"

func main() {
	cmd.Execute()
}
