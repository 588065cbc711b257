package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs/entity"
	"github.com/milk9111/chrono/levels"
	"github.com/milk9111/chrono/prefabs"
)

// levelcheck parses level grids and prints what each one contains. With no
// arguments it checks the embedded catalogue; otherwise each argument is a
// grid file or a directory of *.txt grids.
func main() {
	verbose := flag.Bool("v", false, "print object counts for valid levels")
	flag.Parse()

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("world spec: %v (using defaults)", err)
	}

	sources, err := collect(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	if failed := check(os.Stdout, sources, spec, *verbose); failed > 0 {
		os.Exit(1)
	}
}

type source struct {
	name string
	rows []string
}

func collect(args []string) ([]source, error) {
	if len(args) == 0 {
		var out []source
		for i := 0; i < levels.Count(); i++ {
			src, err := levels.Load(i)
			if err != nil {
				return nil, err
			}
			out = append(out, source{name: src.Name, rows: src.Rows})
		}
		return out, nil
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.txt"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}

	out := make([]source, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, source{name: f, rows: levels.ReadRows(data)})
	}
	return out, nil
}

// check reports each source to w and returns how many failed to parse.
func check(w io.Writer, sources []source, spec prefabs.WorldSpec, verbose bool) int {
	failed := 0
	for _, src := range sources {
		layout, err := levels.Parse(src.rows, entity.GeometryFor(spec, len(src.rows), common.BaseHeight))
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", src.name, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s (%dx%d)\n", src.name, layout.Cols, layout.Rows)
		if !verbose {
			continue
		}
		lever := "no"
		if layout.Lever != nil {
			lever = "yes"
		}
		fmt.Fprintf(w, "     %s\n", strings.Join([]string{
			fmt.Sprintf("past=%d", len(layout.Platforms(levels.Past))),
			fmt.Sprintf("present=%d", len(layout.Platforms(levels.Present))),
			fmt.Sprintf("spikes=%d", len(layout.Spikes)),
			fmt.Sprintf("lasers=%d", len(layout.Lasers)),
			fmt.Sprintf("buttons=%d", len(layout.Buttons)),
			"lever=" + lever,
		}, " "))
	}
	return failed
}
