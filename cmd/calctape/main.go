// Command calctape runs key scripts through the calculator reducer and prints
// the display after every key, like an adding-machine tape.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"sparkcalc/calc"
)

func main() {
	var (
		keys      = flag.String("keys", "", `Key script, e.g. "9+1=".`)
		inPath    = flag.String("in", "", `File with one key script per line ("-" = stdin).`)
		maxDigits = flag.Int("max-digits", 0, "Cap digit entry per number (0 = unbounded).")
		verbose   = flag.Bool("v", false, "Also print the pending operation.")
	)
	flag.Parse()

	if (*keys == "") == (*inPath == "") {
		fatalf("usage: calctape -keys \"9+1=\" [-max-digits N] [-v]\n       calctape -in scripts.txt [-max-digits N] [-v]")
	}
	if *maxDigits < 0 {
		fatalf("max-digits out of range: %d", *maxDigits)
	}

	t := tape{w: os.Stdout, r: calc.Reducer{MaxDigits: *maxDigits}, verbose: *verbose}

	if *keys != "" {
		if err := t.run(*keys); err != nil {
			fatalf("%v", err)
		}
		return
	}

	in := io.Reader(os.Stdin)
	if *inPath != "-" {
		f, err := os.Open(*inPath)
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		in = f
	}
	if err := t.runAll(in); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type tape struct {
	w       io.Writer
	r       calc.Reducer
	verbose bool
}

// run prints one line per key. Each script starts from a cleared calculator.
func (t *tape) run(script string) error {
	keys, err := calc.ParseScript(script)
	if err != nil {
		return err
	}
	s := calc.Initial()
	for _, k := range keys {
		s = t.r.Apply(s, k.Event)
		if t.verbose && s.Pending() {
			fmt.Fprintf(t.w, "%-3s %s  [%s %s]\n", k.Label, s.Display, calc.Format(s.Previous), s.Op)
			continue
		}
		fmt.Fprintf(t.w, "%-3s %s\n", k.Label, s.Display)
	}
	return nil
}

// runAll runs every non-empty line as a script, separating tapes with a blank line.
func (t *tape) runAll(in io.Reader) error {
	sc := bufio.NewScanner(in)
	line := 0
	first := true
	for sc.Scan() {
		line++
		script := strings.TrimSpace(sc.Text())
		if script == "" || strings.HasPrefix(script, "#") {
			continue
		}
		if !first {
			fmt.Fprintln(t.w)
		}
		first = false
		if err := t.run(script); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}
