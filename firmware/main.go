//go:build tinygo

package main

import (
	"encoding/hex"
	"machine"
	"time"

	"github.com/ridichi14/Temperatura-sol-si-aer/internal/objtemp"
	"github.com/ridichi14/Temperatura-sol-si-aer/internal/payload"
	"github.com/ridichi14/Temperatura-sol-si-aer/internal/sched"
)

var lastSample payload.Sample

// halt never returns: blink and repeat the message forever.
func halt(msg string) {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		println("fatal:", msg)
		machine.LED.Set(!machine.LED.Get())
		time.Sleep(time.Second)
	}
}

func main() {
	// Give the host time to enumerate the USB serial device.
	time.Sleep(2 * time.Second)
	println("soilnode: boot")

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for i := 0; i < 3; i++ {
		machine.LED.Low()
		time.Sleep(250 * time.Millisecond)
		machine.LED.High()
		time.Sleep(250 * time.Millisecond)
	}

	initSensors()

	if err := initRadio(); err != nil {
		halt(err.Error())
	}

	timeline := sched.New(joinRetryInterval, sendInterval, statusInterval)
	start := time.Now()
	var uplinks int

	for {
		serviceRadio()
		now := time.Now()

		if timeline.JoinDue(now) {
			timeline.JoinStarted(now)
			println("join: starting attempt")
			if err := joinNetwork(); err != nil {
				timeline.JoinFailed()
				println("join: failed:", err.Error(), "- next attempt in 120s")
			} else {
				timeline.JoinSucceeded(time.Now())
				println("join: accepted")
			}
		}

		if timeline.SendDue(now) {
			lastSample = takeSample()
			buf := payload.Encode(lastSample)
			println("send: payload", hex.EncodeToString(buf[:]))
			if err := sendUplink(buf[:]); err != nil {
				println("send: uplink failed:", err.Error())
			} else {
				uplinks++
			}
			timeline.Sent(time.Now())
		}

		if timeline.StatusDue(now) {
			printStatus(now.Sub(start), timeline.Joined(), uplinks, lastSample)
			timeline.StatusPrinted(now)
		}

		time.Sleep(loopTick)
	}
}

// takeSample runs one full measurement cycle.
func takeSample() payload.Sample {
	soilPct := readSoilPercent()
	tempC, ok := readObjectTempC()
	volts := readBatteryVolts()

	s := payload.Sample{
		SoilPercent:  soilPct,
		ObjectTempC:  objtemp.Sanitize(tempC, ok),
		BatteryVolts: volts,
	}
	println("sense: soil", int(s.SoilPercent*100), "c%, temp", int(s.ObjectTempC*100), "cC, batt", int(s.BatteryVolts*100), "cV")
	return s
}

func printStatus(uptime time.Duration, joined bool, uplinks int, last payload.Sample) {
	println("status: uptime", int64(uptime.Seconds()), "s joined", joined, "uplinks", uplinks, "last", last.String())
}
