package discord

import (
	"log"
	"time"
)

// step cronometra un tramo del dispatch (los timeouts de Discord son cortos,
// conviene saber dónde se va el tiempo).
func step(label string) func() {
	start := time.Now()
	return func() { log.Printf("[trace] %s dur=%s", label, time.Since(start)) }
}
