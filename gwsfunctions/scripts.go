package main

import (
	"os"
)

func runScripts(deps *Deps) {
	runCrons := os.Getenv("CRONS")
	if runCrons == "on" {
		go startCrons(deps)
	}

	// SWEEP=now runs one leaver sweep at startup, handy when testing the
	// schedule without waiting for the cron slot.
	if os.Getenv("SWEEP") == "now" {
		go runLeaverSweep(deps)
	}
}
