package main

import (
	"log"
	"os"

	"github.com/Ismael0303/SOUP-Market-sub001/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
