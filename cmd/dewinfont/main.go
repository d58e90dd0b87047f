// Dewinfont extracts bitmap font data from a Windows .FON or .FNT file
// into one or more .fd text descriptions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dewinfont/winfont"
	"github.com/dewinfont/winfont/fd"
)

func main() {
	var outfile, prefix string
	flag.StringVar(&outfile, "o", "", "write the (single) extracted font to this .fd file")
	flag.StringVar(&outfile, "outfile", "", "write the (single) extracted font to this .fd file")
	flag.StringVar(&prefix, "p", "", "write each extracted font to <prefix>NN.fd")
	flag.StringVar(&prefix, "prefix", "", "write each extracted font to <prefix>NN.fd")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o outfile | -p prefix] font-file\n", os.Args[0])
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	fonts, err := winfont.ParseFonts(data)
	if err != nil {
		log.Fatal(err)
	}

	for i, font := range fonts {
		fmt.Printf("%s %d", font.FaceName, font.PointSize)

		var fname string
		switch {
		case outfile != "":
			if len(fonts) > 1 {
				log.Fatal("more than one font in file; use -p prefix instead of -o outfile")
			}
			fname = outfile
		case prefix != "":
			fname = fmt.Sprintf("%s%02d.fd", prefix, i)
		}

		if fname != "" {
			out, err := os.Create(fname)
			if err != nil {
				log.Fatal(err)
			}
			if err := fd.Encode(out, font); err != nil {
				out.Close()
				log.Fatal(err)
			}
			if err := out.Close(); err != nil {
				log.Fatal(err)
			}
			fmt.Printf(" => %s", fname)
		}
		fmt.Println()
	}
}
