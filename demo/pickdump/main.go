// Command pickdump prints the records of a pick journal written by the demo.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"glscene/scene"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [journal]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	if err := dump(os.Stdout, in); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(w io.Writer, r io.Reader) error {
	recs, err := scene.ReadPickJournal(r)
	for i, rec := range recs {
		at := "-"
		if !rec.Time.IsZero() {
			at = rec.Time.UTC().Format(time.RFC3339Nano)
		}
		fmt.Fprintf(w, "#%d %s (%d,%d) nearest=%d\n", i, at, rec.X, rec.Y, scene.NearestPickID(rec.Hits))
		for _, h := range rec.Hits {
			fmt.Fprintf(w, "\t%s\n", h)
		}
	}
	return err
}
