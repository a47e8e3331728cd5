package main

import "github.com/oshokin/bundle-tools/cmd/bundle-docfetch/cmd"

func main() {
	cmd.Execute()
}
