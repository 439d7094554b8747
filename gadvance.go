// gadvance runs the built-in demo: a keypad-steered ship over a scrolling
// starfield, drawn entirely through the video layer with every memory
// write inside a blanking window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/ksutton/gadvance/assets"
	"github.com/ksutton/gadvance/console"
	"github.com/ksutton/gadvance/display"
	"github.com/ksutton/gadvance/scan"
	"github.com/ksutton/gadvance/video"
)

var (
	backend  = flag.String("backend", "window", "Display backend: window, terminal or none.")
	scale    = flag.Int("scale", 3, "Window pixel scale.")
	frames   = flag.Int("frames", 0, "Stop after this many frames (0 = run until quit).")
	snapshot = flag.String("snapshot", "", "Write the final frame to this PNG path.")
)

func main() {
	flag.Parse()

	out, err := display.New(*backend, *scale)
	if err != nil {
		log.Fatalf("Couldn't build display: %v", err)
	}
	if err := out.Start(); err != nil {
		log.Fatalf("Couldn't start display: %v", err)
	}
	defer out.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hw := console.New()
	if err := run(ctx, hw, out); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}

	if *snapshot != "" {
		if err := display.WriteSnapshot(*snapshot, hw.FrameRGBA(), *scale); err != nil {
			log.Fatalf("Couldn't write snapshot: %v", err)
		}
		log.Printf("Wrote %s", *snapshot)
	}
}

// Screen block layout.
const (
	starfieldMap = 8
	statusMap    = 9
)

type star struct {
	handle *video.ObjectHandle
	x, y   int
	speed  int
}

func run(ctx context.Context, hw *console.Console, out display.Output) error {
	ctrl := video.NewControl(hw)

	// All setup writes inside one vblank.
	hw.WaitFor(scan.VBlank)
	ctrl.ResetDisplayControl()
	ctrl.ResetObjects()
	ctrl.LoadPalette(0, assets.BGPalette)
	ctrl.LoadObjectPalette(0, assets.ObjectPalette)
	ctrl.LoadTileset(0, assets.Backdrop)
	ctrl.LoadTileset(1, assets.Font)

	sky := ctrl.Layer(1)
	sky.SetCharBase(0)
	sky.SetScreenBase(starfieldMap)
	sky.SetPriority(1)
	sky.SetColorMode(video.Color256)

	status := ctrl.Layer(0)
	status.SetCharBase(1)
	status.SetScreenBase(statusMap)
	status.SetPriority(0)
	status.SetColorMode(video.Color256)

	rng := rand.New(rand.NewSource(1))
	skyMap := ctrl.Map(starfieldMap)
	for y := 0; y < console.TILEMAP_H; y++ {
		for x := 0; x < console.TILEMAP_W; x++ {
			switch rng.Intn(10) {
			case 0:
				skyMap.SetTile(video.Pos{X: x, Y: y}, video.NewTile(assets.TILE_STAR))
			case 1:
				skyMap.SetTile(video.Pos{X: x, Y: y}, video.NewTile(assets.TILE_DUST))
			}
		}
	}

	statusMp := ctrl.Map(statusMap)
	statusMp.SetTiles(video.Pos{X: 1, Y: 0}, video.Text("GADVANCE"))

	shipTile, err := ctrl.LoadSprite(assets.Ship)
	if err != nil {
		return fmt.Errorf("load ship: %w", err)
	}
	starTile, err := ctrl.LoadSprite(assets.Star)
	if err != nil {
		return fmt.Errorf("load star: %w", err)
	}

	ship, err := ctrl.Objects().Acquire()
	if err != nil {
		return fmt.Errorf("acquire ship slot: %w", err)
	}
	shipX, shipY := 40, console.SCREEN_H/2-8

	ctrl.SetMode(0)
	ctrl.SetObjectTileMapping(video.OneDim)
	ctrl.EnableLayer(0)
	ctrl.EnableLayer(1)
	ctrl.EnableObjects()

	var stars []*star
	score := 0
	scoreArea := video.Rect{W: 12, H: 1}

	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	for frame := 0; *frames == 0 || frame < *frames; frame++ {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}

		hw.SetPressed(out.Keys())
		keys := hw.ReadKeys()
		if keys.Any(console.KEY_START) {
			return nil
		}
		shipX, shipY = steer(keys, shipX, shipY)

		// Spawn a drifting star every half second; retire the oldest if
		// the slot pool ever runs dry.
		if frame%30 == 0 {
			h, err := ctrl.Objects().Acquire()
			if err != nil && len(stars) > 0 {
				if err := stars[0].handle.Release(); err != nil {
					return fmt.Errorf("retire star: %w", err)
				}
				stars = stars[1:]
				h, err = ctrl.Objects().Acquire()
			}
			if err == nil {
				stars = append(stars, &star{
					handle: h,
					x:      console.SCREEN_W,
					y:      rng.Intn(console.SCREEN_H - 8),
					speed:  1 + rng.Intn(3),
				})
			}
		}
		live := stars[:0]
		for _, s := range stars {
			s.x -= s.speed
			if s.x < -8 {
				if err := s.handle.Release(); err != nil {
					return fmt.Errorf("release star: %w", err)
				}
				score++
				continue
			}
			live = append(live, s)
		}
		stars = live

		// Everything below touches gated memory: wait out the frame first.
		hw.WaitFor(scan.VBlank)

		if err := out.Present(hw.FrameRGBA()); err != nil {
			return nil // backend closed
		}

		// The starfield drifts by; the map wraps at 256 pixels.
		sky.SetXOffset(frame / 2)

		if err := ship.WriteAttributes(video.Attrs{
			X: shipX, Y: shipY, Shape: video.SHAPE_16X16,
			Color256: true, Tile: shipTile,
		}); err != nil {
			return fmt.Errorf("draw ship: %w", err)
		}
		for _, s := range stars {
			if err := s.handle.WriteAttributes(video.Attrs{
				X: s.x & int(console.ATTR1_X_MASK), Y: s.y,
				Shape: video.SHAPE_8X8, Color256: true, Tile: starTile,
			}); err != nil {
				return fmt.Errorf("draw star: %w", err)
			}
		}

		text := video.Windowed{
			Inner:  video.Text(fmt.Sprintf("SCORE %d", score)),
			Window: scoreArea,
		}
		statusMp.ClearTiles(video.Pos{X: 1, Y: 19}, text)
		statusMp.SetTiles(video.Pos{X: 1, Y: 19}, text)

		hw.WaitFor(scan.Visible)
	}

	// Let the compositor scan out the last frame before returning, so a
	// snapshot shows it.
	hw.WaitFor(scan.VBlank)
	out.Present(hw.FrameRGBA())
	return nil
}

func steer(keys console.Keys, x, y int) (int, int) {
	speed := 1
	if keys.Any(console.KEY_A) {
		speed = 3
	}
	if keys.Any(console.KEY_LEFT) {
		x -= speed
	}
	if keys.Any(console.KEY_RIGHT) {
		x += speed
	}
	if keys.Any(console.KEY_UP) {
		y -= speed
	}
	if keys.Any(console.KEY_DOWN) {
		y += speed
	}
	if x < 0 {
		x = 0
	}
	if x > console.SCREEN_W-16 {
		x = console.SCREEN_W - 16
	}
	if y < 0 {
		y = 0
	}
	if y > console.SCREEN_H-16 {
		y = console.SCREEN_H - 16
	}
	return x, y
}
