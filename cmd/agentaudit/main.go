package main

// version is stamped by the release workflow via -ldflags.
var version = "0.4.0"

func main() {
	Execute()
}
