// Package config loads pixelgraft tunables from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/composite"
	"github.com/pixelgraft/pixelgraft/filter"
	"github.com/pixelgraft/pixelgraft/match"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PIXELGRAFT_"

// Config holds every externally tunable constant.
type Config struct {
	BlockSize     int
	RangeX        int
	RangeY        int
	DiffThreshold int
	MismatchCap   int

	BlurRadius int
	BlurSigma  float64 // <= 0 means BlurRadius/2

	SimilarityThreshold int
	DrawColor           pixelgraft.RGB
	SquareColor         pixelgraft.RGB
	SquareWidth         int
	DiffMark            pixelgraft.RGB
	EraseRadius         int

	// SceneDistance is the largest perceptual hash distance at which two
	// photographs are considered the same scene.
	SceneDistance int

	Workers int // 0 = GOMAXPROCS
}

// Load returns the defaults overridden by PIXELGRAFT_* variables.
// Malformed values fall back to the default.
func Load() *Config {
	return &Config{
		BlockSize:     getEnvInt("BLOCK_SIZE", match.DefaultBlockSize),
		RangeX:        getEnvInt("RANGE_X", match.DefaultRangeX),
		RangeY:        getEnvInt("RANGE_Y", match.DefaultRangeY),
		DiffThreshold: getEnvInt("DIFF_THRESHOLD", match.DefaultDiffThreshold),
		MismatchCap:   getEnvInt("MISMATCH_CAP", match.DefaultMismatchCap),

		BlurRadius: getEnvInt("BLUR_RADIUS", filter.DefaultRadius),
		BlurSigma:  getEnvFloat("BLUR_SIGMA", 0),

		SimilarityThreshold: getEnvInt("SIMILARITY_THRESHOLD", composite.DefaultSimilarityThreshold),
		DrawColor:           getEnvColor("DRAW_COLOR", White),
		SquareColor:         getEnvColor("SQUARE_COLOR", Blue),
		SquareWidth:         getEnvInt("SQUARE_WIDTH", 2),
		DiffMark:            getEnvColor("DIFF_MARK", Black),
		EraseRadius:         getEnvInt("ERASE_RADIUS", pixelgraft.DefaultEraseRadius),

		SceneDistance: getEnvInt("SCENE_DISTANCE", 10),
		Workers:       getEnvInt("WORKERS", 0),
	}
}

// Validate reports every out-of-range field.
func (c *Config) Validate() error {
	var errs []error
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("config: %s %d must be >= 0", name, v))
		}
	}
	nonNegative("block size", c.BlockSize)
	nonNegative("range x", c.RangeX)
	nonNegative("range y", c.RangeY)
	nonNegative("mismatch cap", c.MismatchCap)
	nonNegative("blur radius", c.BlurRadius)
	nonNegative("square width", c.SquareWidth)
	nonNegative("erase radius", c.EraseRadius)
	nonNegative("scene distance", c.SceneDistance)
	nonNegative("workers", c.Workers)
	if c.SimilarityThreshold < 1 {
		errs = append(errs, fmt.Errorf("config: similarity threshold %d must be >= 1", c.SimilarityThreshold))
	}
	return errors.Join(errs...)
}

// Match returns the block search configuration.
func (c *Config) Match() match.Config {
	return match.Config{
		BlockSize:     c.BlockSize,
		RangeX:        c.RangeX,
		RangeY:        c.RangeY,
		DiffThreshold: c.DiffThreshold,
		MismatchCap:   c.MismatchCap,
		Workers:       c.Workers,
	}
}

// Blur returns the blur filter configuration.
func (c *Config) Blur() *filter.BlurFilter {
	return &filter.BlurFilter{Radius: c.BlurRadius, Sigma: c.BlurSigma, Workers: c.Workers}
}

// Compositor returns a compositor for the given offset.
func (c *Config) Compositor(offset pixelgraft.Point) composite.Compositor {
	return composite.Compositor{Offset: offset, Threshold: c.SimilarityThreshold, Workers: c.Workers}
}

func getEnv(key, def string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := getEnv(key, ""); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := getEnv(key, ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvColor(key string, def pixelgraft.RGB) pixelgraft.RGB {
	if v := getEnv(key, ""); v != "" {
		if c, err := ParseColor(v); err == nil {
			return c
		}
	}
	return def
}

// Named colors.
var (
	Black = pixelgraft.RGB{}
	White = pixelgraft.RGB{R: 255, G: 255, B: 255}
	Red   = pixelgraft.RGB{R: 255}
	Green = pixelgraft.RGB{G: 255}
	Blue  = pixelgraft.RGB{B: 255}
)

var namedColors = map[string]pixelgraft.RGB{
	"black": Black,
	"white": White,
	"red":   Red,
	"green": Green,
	"blue":  Blue,
}

// ParseColor parses "#rrggbb", "#rgb" (with or without the leading '#')
// or a color name.
func ParseColor(s string) (pixelgraft.RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return pixelgraft.RGB{}, fmt.Errorf("config: invalid color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return pixelgraft.RGB{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return pixelgraft.RGB{R: r, G: g, B: b}, nil
}
