package main

import "github.com/gaurav-prasanna/easyread/cmd"

func main() {
	cmd.Execute()
}
