// Command pendemo runs a short pen script on an in-memory stage and saves
// the result as a PNG.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/pen"
	"github.com/gogpu/pen/integration/ggsurface"
	"github.com/gogpu/pen/stage"
)

func main() {
	var (
		width   = flag.Int("width", 480, "stage width")
		height  = flag.Int("height", 360, "stage height")
		output  = flag.String("output", "pen.png", "output file")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		pen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, err := ggsurface.New(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Close()

	s := stage.New(stage.WithDrawables(r))
	p := pen.New(pen.WithRenderer(r))
	s.OnCreated(p.OnActorCreated)
	s.OnRemoved(p.OnActorRemoved)

	turtle := s.NewSprite("turtle")
	turtle.SetCostume(costume())

	p.Run(pen.OpClear, nil, nil)
	drawSpiral(p, turtle)
	drawShadeRamp(p, turtle)
	drawStamps(p, s, turtle)

	if err := r.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Pen demo saved to %s (%dx%d, %d redraws)\n", *output, *width, *height, r.Redraws())
}

// drawSpiral traces a spiral while cycling the pen color.
func drawSpiral(p *pen.Pen, turtle *stage.Sprite) {
	p.Run(pen.OpSetPenColorToColor, turtle, pen.Args{"COLOR": "#ff0000"})
	p.Run(pen.OpSetPenSizeTo, turtle, pen.Args{"SIZE": 2})
	turtle.Drag(0, 0)
	p.Run(pen.OpPenDown, turtle, nil)
	for i := 0; i < 720; i++ {
		angle := float64(i) * math.Pi / 45
		radius := float64(i) / 5
		turtle.SetXY(radius*math.Cos(angle), radius*math.Sin(angle)+30)
		p.Run(pen.OpChangePenColorParamBy, turtle, pen.Args{"COLOR_PARAM": "color", "VALUE": 0.25})
		if i%90 == 0 {
			p.Run(pen.OpChangePenSizeBy, turtle, pen.Args{"SIZE": 1})
		}
	}
	p.Run(pen.OpPenUp, turtle, nil)
}

// drawShadeRamp draws one dot per legacy shade step along the bottom edge.
func drawShadeRamp(p *pen.Pen, turtle *stage.Sprite) {
	p.Run(pen.OpSetPenSizeTo, turtle, pen.Args{"SIZE": 18})
	p.Run(pen.OpSetPenHueToNumber, turtle, pen.Args{"HUE": 140})
	for i := 0; i < 20; i++ {
		turtle.Drag(-190+float64(i)*20, -150)
		p.Run(pen.OpSetPenShadeToNumber, turtle, pen.Args{"SHADE": i * 10})
		p.Run(pen.OpPenDown, turtle, nil)
		p.Run(pen.OpPenUp, turtle, nil)
	}
}

// drawStamps stamps fading clones of the turtle in the top corners.
func drawStamps(p *pen.Pen, s *stage.Stage, turtle *stage.Sprite) {
	for i, x := range []float64{-200, -170, -140, 140, 170, 200} {
		clone := s.Clone(turtle)
		clone.SetSize(60 + float64(i)*15)
		clone.Drag(x, 140)
		p.Run(pen.OpStamp, clone, nil)
		s.Remove(clone)
	}
	s.Remove(turtle)
}

// costume renders the turtle image.
func costume() image.Image {
	dc := gg.NewContext(24, 24)
	dc.SetRGB(0.2, 0.6, 0.3)
	dc.DrawCircle(12, 12, 10)
	_ = dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(16, 9, 3)
	_ = dc.Fill()
	return dc.Image()
}
