package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/composite"
	"github.com/pixelgraft/pixelgraft/internal/scenecheck"
	"github.com/pixelgraft/pixelgraft/match"
	"github.com/pixelgraft/pixelgraft/picker"
)

func runMatch(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("match")
	pathA := fs.String("a", "", "image holding the query block")
	pathB := fs.String("b", "", "image searched for the block")
	x := fs.Int("x", -1, "query center x in image A")
	y := fs.Int("y", -1, "query center y in image A")
	marker := fs.String("marker", "", "marker command that picks the query center on image A")
	blur := fs.Bool("blur", false, "blur both images before matching")
	square := fs.String("square", "", "save image B with the match outlined to this path")
	diffOut := fs.String("diff", "", "save image A with differing pixels marked to this path")
	mcfg := e.cfg.Match()
	fs.IntVar(&mcfg.BlockSize, "block", mcfg.BlockSize, "block size")
	fs.IntVar(&mcfg.RangeX, "range-x", mcfg.RangeX, "horizontal search half-extent")
	fs.IntVar(&mcfg.RangeY, "range-y", mcfg.RangeY, "vertical search half-extent")
	fs.IntVar(&mcfg.DiffThreshold, "threshold", mcfg.DiffThreshold, "per-pixel distance threshold")
	fs.IntVar(&mcfg.MismatchCap, "cap", mcfg.MismatchCap, "mismatching pixels tolerated per block")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *pathA == "" || *pathB == "" {
		return e.usageError(fs, "-a and -b are required")
	}

	var pick picker.Picker = picker.Static{Point: pixelgraft.Pt(*x, *y)}
	if *marker != "" {
		pick = picker.Marker{Command: strings.Fields(*marker)}
	} else if *x < 0 || *y < 0 {
		return e.usageError(fs, "-x and -y, or -marker, are required")
	}
	center, ok, err := pick.PickPoint(ctx, *pathA)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("no point picked")
	}

	a, err := pixelgraft.Load(*pathA)
	if err != nil {
		return err
	}
	b, err := pixelgraft.Load(*pathB)
	if err != nil {
		return err
	}
	e.checkScene(a, b)

	qa, qb := a, b
	if *blur {
		f := e.cfg.Blur()
		if qa, err = f.Apply(a); err != nil {
			return err
		}
		if qb, err = f.Apply(b); err != nil {
			return err
		}
	}

	m, err := match.New(mcfg)
	if err != nil {
		return err
	}
	res := m.Match(qa, qb, center)
	if !res.Found {
		return fmt.Errorf("center %v: %w", center, res.Err())
	}
	e.printf("match center %v offset %v mismatched %d of %d\n",
		res.Center, res.Offset, res.Score, (mcfg.BlockSize+1)*(mcfg.BlockSize+1))

	if *square != "" {
		out := b.Clone()
		composite.DrawSquare(out, res.Center, mcfg.BlockSize, e.cfg.SquareWidth, e.cfg.SquareColor)
		if err := out.Save(*square); err != nil {
			return err
		}
	}
	if *diffOut != "" {
		out, n := composite.Diff(a, b, res.Offset, e.cfg.DiffMark)
		if err := out.Save(*diffOut); err != nil {
			return err
		}
		e.printf("%d pixels differ\n", n)
	}
	return nil
}

// checkScene warns when the two photographs do not look alike. Matching
// proceeds regardless.
func (e *env) checkScene(a, b *pixelgraft.Buffer) {
	res, err := scenecheck.Compare(a, b)
	if err != nil {
		e.log.Warn("scene check failed", "err", err)
		return
	}
	if !res.Same(e.cfg.SceneDistance) {
		e.log.Warn("images may show different scenes", "distance", res.Distance, "max", e.cfg.SceneDistance)
	}
}

func runFill(_ context.Context, e *env, args []string) error {
	fs := e.flagSet("fill")
	mainPath := fs.String("main", "", "image to modify")
	texPath := fs.String("texture", "", "image to sample")
	points := fs.String("points", "", `clicked points "x,y;x,y;..."`)
	erase := fs.String("erase", "", `erase clicks "x,y;..." removing points within the erase radius`)
	closed := fs.Bool("closed", false, "use the points as a closed polygon instead of adding ground vertices")
	var offset, from, to pointFlag
	fs.Var(&offset, "offset", "texture offset dx,dy")
	fs.Var(&from, "from", "reference point x,y in the main image")
	fs.Var(&to, "to", "the same point x,y in the texture image")
	edges := fs.String("edges", "included", "span edge pixels: included or excluded")
	threshold := fs.Int("threshold", e.cfg.SimilarityThreshold, "similarity threshold for marking outside pixels")
	preview := fs.String("preview", "", "save the main image with the drawn path to this path")
	out := fs.String("out", "", "output image")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *mainPath == "" || *texPath == "" || *out == "" {
		return e.usageError(fs, "-main, -texture and -out are required")
	}

	var d pixelgraft.Point
	switch {
	case offset.set:
		d = offset.p
	case from.set && to.set:
		d = pixelgraft.OffsetBetween(from.p, to.p)
	default:
		return e.usageError(fs, "-offset, or both -from and -to, are required")
	}
	mode, err := parseEdges(*edges)
	if err != nil {
		return e.usageError(fs, err.Error())
	}
	pts, err := parsePoints(*points)
	if err != nil {
		return e.usageError(fs, err.Error())
	}
	erasePts, err := parsePoints(*erase)
	if err != nil {
		return e.usageError(fs, err.Error())
	}

	target, err := pixelgraft.Load(*mainPath)
	if err != nil {
		return err
	}
	tex, err := pixelgraft.Load(*texPath)
	if err != nil {
		return err
	}

	path := pixelgraft.NewPath(pts...)
	for _, p := range erasePts {
		if removed := path.EraseNear(p, e.cfg.EraseRadius); len(removed) > 0 {
			e.log.Info("points erased", "at", p, "removed", removed)
		}
	}
	poly := pixelgraft.Polygon(path.Points())
	if !*closed {
		if poly, err = path.Close(target.Height()); err != nil {
			return err
		}
	}
	if *preview != "" {
		p := target.Clone()
		composite.DrawPath(p, path, e.cfg.DrawColor)
		if err := p.Save(*preview); err != nil {
			return err
		}
	}

	c := e.cfg.Compositor(d)
	c.Edges = mode
	c.Threshold = *threshold
	report, err := c.Apply(target, tex, poly)
	if err != nil {
		return err
	}
	if err := target.Save(*out); err != nil {
		return err
	}
	e.printf("filled %d pixels, marked %d pixels in %v\n", report.Filled, report.Marked, report.Elapsed)
	return nil
}

func parseEdges(s string) (composite.Edges, error) {
	switch strings.ToLower(s) {
	case "included", "":
		return composite.EdgesIncluded, nil
	case "excluded":
		return composite.EdgesExcluded, nil
	default:
		return 0, fmt.Errorf("unknown edge mode %q", s)
	}
}

func runBlur(_ context.Context, e *env, args []string) error {
	fs := e.flagSet("blur")
	in := fs.String("in", "", "input image")
	out := fs.String("out", "", "output image")
	f := e.cfg.Blur()
	fs.IntVar(&f.Radius, "radius", f.Radius, "kernel radius")
	fs.Float64Var(&f.Sigma, "sigma", f.Sigma, "Gaussian sigma (0 = radius/2)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *in == "" || *out == "" {
		return e.usageError(fs, "-in and -out are required")
	}

	src, err := pixelgraft.Load(*in)
	if err != nil {
		return err
	}
	dst, err := f.Apply(src)
	if err != nil {
		return err
	}
	if err := dst.Save(*out); err != nil {
		return err
	}
	e.printf("blurred %d×%d pixels with radius %d\n", dst.Width(), dst.Height(), f.Radius)
	return nil
}

func runDiff(_ context.Context, e *env, args []string) error {
	fs := e.flagSet("diff")
	pathA := fs.String("a", "", "primary image")
	pathB := fs.String("b", "", "secondary image")
	out := fs.String("out", "", "output image")
	var offset pointFlag
	fs.Var(&offset, "offset", "offset dx,dy from A to B")
	mark := colorFlag{c: e.cfg.DiffMark}
	fs.Var(&mark, "mark", "color painted on differing pixels")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *pathA == "" || *pathB == "" || *out == "" {
		return e.usageError(fs, "-a, -b and -out are required")
	}

	a, err := pixelgraft.Load(*pathA)
	if err != nil {
		return err
	}
	b, err := pixelgraft.Load(*pathB)
	if err != nil {
		return err
	}
	img, n := composite.Diff(a, b, offset.p, mark.c)
	if err := img.Save(*out); err != nil {
		return err
	}
	e.printf("%d of %d pixels differ\n", n, a.Width()*a.Height())
	return nil
}

func runPatch(_ context.Context, e *env, args []string) error {
	fs := e.flagSet("patch")
	mainPath := fs.String("main", "", "image to modify")
	refPath := fs.String("ref", "", "reference image of the same size")
	points := fs.String("points", "", `pixels to copy "x,y;x,y;..."`)
	out := fs.String("out", "", "output image")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *mainPath == "" || *refPath == "" || *out == "" {
		return e.usageError(fs, "-main, -ref and -out are required")
	}
	pts, err := parsePoints(*points)
	if err != nil {
		return e.usageError(fs, err.Error())
	}

	target, err := pixelgraft.Load(*mainPath)
	if err != nil {
		return err
	}
	ref, err := pixelgraft.Load(*refPath)
	if err != nil {
		return err
	}
	if target.Bounds() != ref.Bounds() {
		return fmt.Errorf("dimension mismatch: main %v, reference %v", target.Bounds().Size(), ref.Bounds().Size())
	}

	copied := 0
	for _, p := range pts {
		if err := composite.CopyPixel(target, ref, p); err != nil {
			e.log.Warn("pixel skipped", "err", err)
			continue
		}
		copied++
	}
	if err := target.Save(*out); err != nil {
		return err
	}
	e.printf("copied %d of %d pixels\n", copied, len(pts))
	return nil
}
