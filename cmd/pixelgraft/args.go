package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/internal/config"
)

// parsePoint parses "x,y".
func parsePoint(s string) (pixelgraft.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return pixelgraft.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return pixelgraft.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return pixelgraft.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return pixelgraft.Pt(x, y), nil
}

// parsePoints parses "x,y;x,y;...". Empty entries are skipped.
func parsePoints(s string) ([]pixelgraft.Point, error) {
	var pts []pixelgraft.Point
	for part := range strings.SplitSeq(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := parsePoint(part)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// pointFlag is a flag.Value holding an optional point.
type pointFlag struct {
	p   pixelgraft.Point
	set bool
}

func (f *pointFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.p.X, f.p.Y)
}

func (f *pointFlag) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	f.p, f.set = p, true
	return nil
}

// colorFlag is a flag.Value holding a color in any form ParseColor accepts.
type colorFlag struct {
	c pixelgraft.RGB
}

func (f *colorFlag) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", f.c.R, f.c.G, f.c.B)
}

func (f *colorFlag) Set(s string) error {
	c, err := config.ParseColor(s)
	if err != nil {
		return err
	}
	f.c = c
	return nil
}
