// Command rainbowdemo replays a stroke script through the rainbow rasterizer
// and saves the presented frame as PNG.
//
// Usage:
//
//	rainbowdemo [-config script.toml] [-output rainbow.png] [-scale 2] [-filter nearest|linear] [-v]
//
// Without -config a built-in script is used; -dump prints it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rainbow"
)

func main() {
	var (
		config  = flag.String("config", "", "TOML stroke script (default: built-in)")
		output  = flag.String("output", "rainbow.png", "output PNG file, - for stdout")
		scale   = flag.Int("scale", 1, "integer magnification of the saved image")
		filter  = flag.String("filter", "nearest", "magnification filter: nearest or linear")
		caption = flag.Bool("caption", false, "draw the frame version in the corner")
		dump    = flag.Bool("dump", false, "print the script as TOML and exit")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		rainbow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := loadScript(*config)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	if *dump {
		if err := s.encode(os.Stdout); err != nil {
			log.Fatalf("Failed to dump script: %v", err)
		}
		return
	}

	mode, err := parseFilter(*filter)
	if err != nil {
		log.Fatal(err)
	}
	p := &rainbow.ImagePresenter{Scale: *scale, Filter: mode}
	if *caption {
		p.Caption = func(f *rainbow.Frame) string {
			return fmt.Sprintf("v%d", f.Version)
		}
	}

	sum, err := render(s, p)
	if err != nil {
		log.Fatalf("Failed to replay script: %v", err)
	}

	if err := save(*output, p); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	// Keep stdout clean for the image.
	w := io.Writer(os.Stdout)
	if *output == "-" {
		w = os.Stderr
	}
	printSummary(w, sum, *output)
}

// render replays s onto a fresh canvas that presents to p.
func render(s *script, p rainbow.Presenter) (summary, error) {
	bg, err := s.background()
	if err != nil {
		return summary{}, err
	}
	c, err := rainbow.NewCanvas(
		rainbow.WithSize(s.Width, s.Height),
		rainbow.WithBackground(bg),
		rainbow.WithPresenter(p),
	)
	if err != nil {
		return summary{}, err
	}
	// Present the blank buffer so an empty script still yields an image.
	if err := c.Commit(); err != nil {
		return summary{}, err
	}
	return s.replay(c)
}

func parseFilter(name string) (gputypes.FilterMode, error) {
	switch name {
	case "nearest":
		return gputypes.FilterModeNearest, nil
	case "linear":
		return gputypes.FilterModeLinear, nil
	default:
		return 0, fmt.Errorf("unknown filter %q", name)
	}
}

var errNoFrame = errors.New("no frame presented")

func save(path string, p *rainbow.ImagePresenter) error {
	img := p.Image()
	if img == nil {
		return errNoFrame
	}
	if path == "-" {
		return png.Encode(os.Stdout, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printSummary(w io.Writer, sum summary, output string) {
	pr := message.NewPrinter(language.English)
	pr.Fprintf(w, "%d strokes, %d updates, %d clears\n", sum.Strokes, sum.Updates, sum.Clears)
	pr.Fprintf(w, "%d pixels plotted, %d blended, %d clipped\n", sum.Plotted, sum.Blended, sum.Clipped)
	if output != "-" {
		pr.Fprintf(w, "Saved to %s\n", output)
	}
}
