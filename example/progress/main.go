// Command progress demonstrates the timed indicators: a spinner with a
// changing message and a progress bar advanced from a worker loop.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nao1215/wizard"
	"github.com/spf13/pflag"
)

func main() {
	steps := pflag.Int("steps", 20, "number of work steps to simulate")
	pflag.Parse()

	s := wizard.NewSpinner(wizard.WithElapsed())
	if err := s.Start("Resolving dependencies"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	time.Sleep(1 * time.Second)
	s.Message("Still resolving")
	time.Sleep(1 * time.Second)
	s.Stop("Dependencies resolved", 0)

	p := wizard.NewProgressBar(*steps)
	if err := p.Start("Downloading"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i := 0; i < *steps; i++ {
		time.Sleep(100 * time.Millisecond)
		p.Advance(1)
	}
	p.Stop("Download complete", 0)
}
