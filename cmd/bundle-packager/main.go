package main

import "github.com/oshokin/bundle-tools/cmd/bundle-packager/cmd"

func main() {
	cmd.Execute()
}
