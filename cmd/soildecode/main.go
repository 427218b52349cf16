// soildecode decodes captured uplink payloads into engineering units.
// With hex arguments it decodes each one; with no arguments it reads
// firmware log lines from stdin and decodes the uplink lines.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/ridichi14/Temperatura-sol-si-aer/internal/console"
	"github.com/ridichi14/Temperatura-sol-si-aer/internal/payload"
)

func main() {
	if len(os.Args) > 1 {
		for _, arg := range os.Args[1:] {
			raw, err := hex.DecodeString(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid hex %q: %v\n", arg, err)
				os.Exit(1)
			}
			sample, err := payload.Decode(raw)
			if err != nil {
				fmt.Fprintf(os.Stderr, "decode %q: %v\n", arg, err)
				os.Exit(1)
			}
			printSample(arg, sample)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		sample, isUplink, err := console.ParseUplink(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			continue
		}
		if !isUplink {
			continue
		}
		printSample(line, sample)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
}

func printSample(src string, s payload.Sample) {
	fmt.Printf("%s -> soil %.2f %%  object %.2f degC  battery %.2f V\n",
		src, s.SoilPercent, s.ObjectTempC, s.BatteryVolts)
}
