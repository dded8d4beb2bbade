package main

/*-------------------------------------------------------------------
 *
 * Purpose:	Live terminal monitor for a running scheduler.
 *
 * Description:	Attaches to the burst stream a simulated transceiver
 *		mirrors onto its pseudo-terminal (the path trx-sched
 *		logs at startup) and shows a running per-timeslot
 *		summary.  The local terminal is put into raw mode so a
 *		single 'q' quits without scrolling the display away.
 *
 *-------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/term"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	raw := pflag.BoolP("raw", "r", false, "Dump the stream as-is instead of the per-timeslot summary.")
	pflag.Parse()

	if pflag.NArg() != 1 {
		return fmt.Errorf("usage: trx-monitor [--raw] <pty-path>")
	}
	path := pflag.Arg(0)

	stream, err := term.Open(path, term.RawMode)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer stream.Close()

	console, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return fmt.Errorf("could not open controlling terminal: %w", err)
	}
	defer console.Restore()
	defer console.Close()

	quit := make(chan struct{})
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := console.Read(buf); err != nil {
				close(quit)
				return
			}
			if buf[0] == 'q' || buf[0] == 0x03 {
				close(quit)
				return
			}
		}
	}()

	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(stream)
		for sc.Scan() {
			lines <- strings.TrimSpace(sc.Text())
		}
		close(lines)
	}()

	// One summary slot per timeslot, repainted in place.
	var perTN [8]string
	fmt.Print("trx-monitor: q to quit\r\n")
	for {
		select {
		case <-quit:
			fmt.Print("\r\n")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Print("\r\nstream closed\r\n")
				return nil
			}
			if line == "" {
				continue
			}
			if *raw {
				fmt.Print(line, "\r\n")
				continue
			}
			tn := parseTN(line)
			if tn < 0 {
				continue
			}
			perTN[tn] = line
			fmt.Print("\r\x1b[K")
			for i, s := range perTN {
				if s != "" {
					fmt.Printf("[%d] %s  ", i, shorten(s))
				}
			}
		}
	}
}

// parseTN pulls the timeslot out of a "tx trx=0 tn=3 ..." line, or
// returns -1.
func parseTN(line string) int {
	for _, f := range strings.Fields(line) {
		if v, ok := strings.CutPrefix(f, "tn="); ok {
			if len(v) == 1 && v[0] >= '0' && v[0] <= '7' {
				return int(v[0] - '0')
			}
		}
	}
	return -1
}

// shorten trims the leading "tx trx=0 " so eight slots fit one row.
func shorten(s string) string {
	if i := strings.Index(s, "tn="); i > 0 {
		return s[i:]
	}
	return s
}
