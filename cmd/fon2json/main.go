// Fon2json dumps the fonts embedded in one or more Windows font files as
// a compact, lossy JSON array on stdout.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dewinfont/winfont"
	"github.com/dewinfont/winfont/fontjson"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s font-file ...\n", os.Args[0])
		os.Exit(2)
	}

	var sources []fontjson.Source
	for _, name := range os.Args[1:] {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Fatal(err)
		}
		fonts, err := winfont.ParseFonts(data)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		sources = append(sources, fontjson.Source{Path: name, Fonts: fonts})
	}

	out, err := fontjson.Marshal(sources)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(out)
}
