package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/probe"
	"github.com/san-kum/affine/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64, theme viz.Theme) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.Pixels()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder
	header(&sb, width, height, theme)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", theme.Shape)

	dotRadius := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// Plan projects world points onto the ground plane, seen from above with
// right along +x and forward along -y of the image.
type Plan struct {
	Width, Height int
	minX, minZ    float64
	scale         float64
}

// NewPlan fits the x/z extent of pts into a width x height image with a 10%
// margin, keeping the aspect ratio.
func NewPlan(pts []geom.Point3, width, height int) Plan {
	p := Plan{Width: width, Height: height, scale: 1}
	if len(pts) == 0 {
		return p
	}
	minX, maxX := pts[0].X(), pts[0].X()
	minZ, maxZ := pts[0].Z(), pts[0].Z()
	for _, q := range pts {
		minX, maxX = math.Min(minX, q.X()), math.Max(maxX, q.X())
		minZ, maxZ = math.Min(minZ, q.Z()), math.Max(maxZ, q.Z())
	}

	rangeX, rangeZ := maxX-minX, maxZ-minZ
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeZ == 0 {
		rangeZ = 1
	}
	minX -= rangeX * 0.1
	minZ -= rangeZ * 0.1
	rangeX *= 1.2
	rangeZ *= 1.2

	p.scale = math.Min(float64(width)/rangeX, float64(height)/rangeZ)
	p.minX = minX - (float64(width)/p.scale-rangeX)/2
	p.minZ = minZ - (float64(height)/p.scale-rangeZ)/2
	return p
}

// Map returns image coordinates of q.
func (p Plan) Map(q geom.Point3) (float64, float64) {
	x := (q.X() - p.minX) * p.scale
	y := float64(p.Height) - (q.Z()-p.minZ)*p.scale
	return x, y
}

// SceneToSVG draws a top-down plan of the targets and the probe results.
// Misses are drawn out to missLength.
func SceneToSVG(targets []probe.Target, results []probe.Result, width, height int, missLength float64, theme viz.Theme) string {
	w := viz.NewWireframe()
	for _, t := range targets {
		w.AddTarget(t, viz.EdgeShape)
	}
	w.AddResults(results, missLength)

	pts := make([]geom.Point3, 0, 2*len(w.Edges))
	for _, e := range w.Edges {
		pts = append(pts, e.Segment.A(), e.Segment.B())
	}
	plan := NewPlan(pts, width, height)

	var sb strings.Builder
	header(&sb, float64(width), float64(height), theme)
	for _, e := range w.Edges {
		color := theme.Color(e.Kind)
		x1, y1 := plan.Map(e.Segment.A())
		if e.Point() {
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2.5\" fill=\"%s\"/>\n", x1, y1, color)
			continue
		}
		x2, y2 := plan.Map(e.Segment.B())
		stroke := 1.5
		if e.Kind == viz.EdgeRay {
			stroke = 0.75
		}
		fmt.Fprintf(&sb, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"%.2f\"/>\n",
			x1, y1, x2, y2, color, stroke)
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// ProfileToSVG plots hit distance against ray index. NaN values are misses
// and break the path.
func ProfileToSVG(distances []float64, width, height int, theme viz.Theme) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range distances {
		if !math.IsNaN(d) {
			lo, hi = math.Min(lo, d), math.Max(hi, d)
		}
	}
	if len(distances) < 2 || math.IsInf(lo, 1) {
		return ""
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}
	lo -= rng * 0.1
	rng *= 1.2

	var sb strings.Builder
	header(&sb, float64(width), float64(height), theme)
	fmt.Fprintf(&sb, "<path fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\" d=\"", theme.Ray)

	pen := false
	for i, d := range distances {
		if math.IsNaN(d) {
			pen = false
			continue
		}
		x := float64(i) / float64(len(distances)-1) * float64(width)
		y := float64(height) - (d-lo)/rng*float64(height)
		cmd := "L"
		if !pen {
			cmd = "M"
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f ", cmd, x, y)
		pen = true
	}

	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}

func header(sb *strings.Builder, width, height float64, theme viz.Theme) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)
}
