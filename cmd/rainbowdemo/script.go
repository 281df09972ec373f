package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rainbow"
)

// script is a recorded drawing session: a canvas size and a list of strokes
// replayed through a rainbow.Session.
type script struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Radius     int      `toml:"radius"`
	Line       string   `toml:"line"`
	Background []int    `toml:"background"` // 8-bit RGB, white if empty
	Stroke     []stroke `toml:"stroke"`
}

// stroke is one gesture: press at Points[0], drag through every point,
// release. Tool "clear" ignores Points.
type stroke struct {
	Tool   string  `toml:"tool"`
	Points [][]int `toml:"points"`
}

const toolClear = "clear"

// builtinScript is replayed when no -config is given.
const builtinScript = `
width = 512
height = 512
radius = 20
line = "swapless"

[[stroke]]
tool = "line"
points = [[32, 32], [480, 32], [480, 200], [256, 256]]

[[stroke]]
tool = "line"
points = [[256, 256], [256, 480], [40, 300]]

[[stroke]]
tool = "wu"
points = [[32, 480], [200, 300], [480, 470]]

[[stroke]]
tool = "circle"
points = [[128, 128], [160, 150], [200, 180], [240, 200]]

[[stroke]]
tool = "circle"
points = [[400, 380], [400, 380], [400, 380]]
`

var errEmptyStroke = errors.New("stroke has no points")

func defaultScript() *script {
	return &script{
		Width:  rainbow.DefaultWidth,
		Height: rainbow.DefaultHeight,
		Radius: rainbow.DefaultCircleRadius,
		Line:   "swapless",
	}
}

// decodeScript reads a TOML script. Missing top-level fields keep their
// defaults.
func decodeScript(r io.Reader) (*script, error) {
	s := defaultScript()
	md, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode script: unknown key %q", undecoded[0].String())
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadScript reads the script at path, or the built-in one if path is empty.
func loadScript(path string) (*script, error) {
	if path == "" {
		return decodeScript(bytes.NewBufferString(builtinScript))
	}
	s := defaultScript()
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("read %s: unknown key %q", path, undecoded[0].String())
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// encode writes s as TOML.
func (s *script) encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

func (s *script) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", rainbow.ErrInvalidSize, s.Width, s.Height)
	}
	if s.Radius < 0 {
		return fmt.Errorf("negative radius %d", s.Radius)
	}
	if _, err := s.lineAlgorithm(); err != nil {
		return err
	}
	if _, err := s.background(); err != nil {
		return err
	}
	for i, st := range s.Stroke {
		if st.Tool == toolClear {
			continue
		}
		if _, err := rainbow.ParseTool(st.Tool); err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		if len(st.Points) == 0 {
			return fmt.Errorf("stroke %d: %w", i, errEmptyStroke)
		}
		for j, p := range st.Points {
			if len(p) != 2 {
				return fmt.Errorf("stroke %d: point %d has %d coordinates, want 2", i, j, len(p))
			}
		}
	}
	return nil
}

func (s *script) lineAlgorithm() (rainbow.LineAlgorithm, error) {
	switch s.Line {
	case "", "swapless":
		return rainbow.LineSwapless, nil
	case "classic":
		return rainbow.LineClassic, nil
	default:
		return 0, fmt.Errorf("unknown line algorithm %q", s.Line)
	}
}

func (s *script) background() (rainbow.RGBA, error) {
	if len(s.Background) == 0 {
		return rainbow.White, nil
	}
	if len(s.Background) != 3 {
		return rainbow.RGBA{}, fmt.Errorf("background has %d channels, want 3", len(s.Background))
	}
	var ch [3]uint8
	for i, v := range s.Background {
		if v < 0 || v > 255 {
			return rainbow.RGBA{}, fmt.Errorf("background channel %d out of range: %d", i, v)
		}
		ch[i] = uint8(v)
	}
	return rainbow.RGB8(ch[0], ch[1], ch[2]), nil
}

func (st stroke) point(i int) image.Point {
	return image.Pt(st.Points[i][0], st.Points[i][1])
}

// summary counts the work done by a replay.
type summary struct {
	Strokes int
	Updates int
	Clears  int
	rainbow.Stats
}

// replay runs every stroke of s through a session on c.
func (s *script) replay(c *rainbow.Canvas) (summary, error) {
	var sum summary
	line, err := s.lineAlgorithm()
	if err != nil {
		return sum, err
	}
	sess := rainbow.NewSession(c,
		rainbow.WithCircleRadius(s.Radius),
		rainbow.WithLineAlgorithm(line),
	)

	for i, st := range s.Stroke {
		if st.Tool == toolClear {
			if err := sess.Clear(); err != nil {
				return sum, fmt.Errorf("stroke %d: %w", i, err)
			}
			sum.Clears++
			continue
		}
		tool, err := rainbow.ParseTool(st.Tool)
		if err != nil {
			return sum, fmt.Errorf("stroke %d: %w", i, err)
		}
		if err := sess.Begin(tool, st.point(0)); err != nil {
			return sum, fmt.Errorf("stroke %d: %w", i, err)
		}
		for j := range st.Points {
			stats, err := sess.Update(st.point(j))
			sum.Stats = sum.Stats.Add(stats)
			sum.Updates++
			if err != nil {
				sess.End()
				return sum, fmt.Errorf("stroke %d point %d: %w", i, j, err)
			}
		}
		sess.End()
		sum.Strokes++
	}
	return sum, nil
}
