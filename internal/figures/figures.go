// Package figures holds the batch helpers shared by the figure cmds.
package figures

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sync/atomic"
	"time"
)

// Monitor reports completion of total units to stdout once per second
// until the returned counter reaches total. Callers bump the counter
// with atomic.AddUint64 as units finish.
func Monitor(total uint64) *uint64 {
	var progress uint64
	epoch := time.Now()
	go func() {
		for range time.Tick(1 * time.Second) {
			done := atomic.LoadUint64(&progress)
			since := time.Since(epoch)
			if done >= total {
				fmt.Printf("completed in %s\n", since)
				break
			}
			if done == 0 {
				continue
			}
			remaining := time.Duration(float64(since) * float64(total-done) / float64(done))
			fmt.Printf("%.0f%% complete; time remaining %s\n",
				100*float64(done)/float64(total), remaining)
		}
	}()
	return &progress
}

// SavePNG writes m to path.
func SavePNG(m image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, m)
}
