// Mkwinfont generates a Windows bitmap .fnt or .fon file from one or more
// .fd text descriptions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dewinfont/winfont/fd"
	"github.com/dewinfont/winfont/fnt"
	"github.com/dewinfont/winfont/fon"
)

func main() {
	var outfile, facename string
	flag.StringVar(&outfile, "o", "", "output .fnt or .fon file")
	flag.StringVar(&outfile, "outfile", "", "output .fnt or .fon file")
	flag.StringVar(&facename, "facename", "", "shared face name for a .fon family")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o outfile] [--facename name] font.fd ...\n", os.Args[0])
		os.Exit(2)
	}

	var fonts []*fnt.Font
	for _, name := range flag.Args() {
		in, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		f, err := fd.Decode(in)
		in.Close()
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		fonts = append(fonts, f)
	}
	fmt.Printf("Read %d fonts\n", len(fonts))

	if outfile == "" {
		fmt.Println("No output file specified")
		return
	}

	switch {
	case strings.HasSuffix(outfile, ".fnt"):
		if len(fonts) > 1 {
			log.Fatal("can only write one font to a .fnt; use a .fon for a family")
		}
		data, err := fnt.Encode(fonts[0])
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(outfile, data, 0o644); err != nil {
			log.Fatal(err)
		}

	case strings.HasSuffix(outfile, ".fon"):
		if facename == "" {
			names := map[string]bool{}
			for _, f := range fonts {
				names[f.FaceName] = true
			}
			if len(names) != 1 {
				log.Fatalf("specify a face name explicitly; fonts have %v", keys(names))
			}
			for name := range names {
				facename = name
			}
		}
		fnts := make([][]byte, len(fonts))
		for i, f := range fonts {
			data, err := fnt.Encode(f)
			if err != nil {
				log.Fatal(err)
			}
			fnts[i] = data
		}
		if err := os.WriteFile(outfile, fon.BuildNE(facename, fnts), 0o644); err != nil {
			log.Fatal(err)
		}

	default:
		log.Fatalf("unknown file type: %s", outfile)
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
