package main

import "github.com/arturoeanton/go-xmltok/cmd/xmltok"

func main() {
	xmltok.Execute()
}
