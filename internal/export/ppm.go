package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"worldsim/internal/biomes"
	"worldsim/internal/grid"
	"worldsim/internal/werr"
)

const riverVisibleVolume = 5.0

type rgb struct{ r, g, b uint8 }

var (
	colorWaterDeep  = rgb{0, 0, 128}
	colorRiver      = rgb{0, 100, 255}
	colorUnowned    = rgb{200, 200, 200}
	colorDesert     = rgb{240, 230, 140}
	colorForest     = rgb{34, 139, 34}
	colorTundra     = rgb{200, 200, 200}
	colorSnow       = rgb{255, 255, 255}
	colorMountains  = rgb{100, 100, 100}
	colorHills      = rgb{160, 160, 100}
	colorPlains     = rgb{107, 142, 35}
)

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// writePPM streams a P3 ASCII PPM: the bit-exact header, then one
// space-separated row of pixels per grid row, top to bottom.
func writePPM(w io.Writer, view View, pixelAt func(x, y int) rgb) error {
	width, height := view.Width(), view.Height()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixelAt(x, y)
			if x > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d %d %d", c.r, c.g, c.b); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteGeography renders water as deep blue, river cells as bright blue,
// and everything else as an elevation grayscale ramp.
func WriteGeography(w io.Writer, view View) error {
	_, maxElev := view.ElevationRange()
	if maxElev <= 0 {
		maxElev = grid.MaxElevationM
	}
	return writePPM(w, view, func(x, y int) rgb {
		cell := view.Cell(x, y)
		switch {
		case cell.Terrain == grid.Ocean:
			return colorWaterDeep
		case cell.RiverVolume > riverVisibleVolume:
			return colorRiver
		default:
			v := clampByte(cell.ElevationM / grid.MaxElevationM * 255)
			return rgb{v, v, v}
		}
	})
}

// WritePolitics renders water as deep blue, owned land in its owning
// faction's color, and unowned land as neutral gray.
func WritePolitics(w io.Writer, view View) error {
	return writePPM(w, view, func(x, y int) rgb {
		cell := view.Cell(x, y)
		if cell.Terrain == grid.Ocean {
			return colorWaterDeep
		}
		owner := view.Ownership(x, y)
		if owner < 0 {
			return colorUnowned
		}
		f, ok := view.Faction(int(owner))
		if !ok {
			return colorUnowned
		}
		return rgb{f.ColorRGB[0], f.ColorRGB[1], f.ColorRGB[2]}
	})
}

// WriteClimate renders temperature linearly mapped across
// [MinTemperatureC, MaxTemperatureC] into a blue-to-red ramp.
func WriteClimate(w io.Writer, view View) error {
	return writePPM(w, view, func(x, y int) rgb {
		cell := view.Cell(x, y)
		span := grid.MaxTemperatureC - grid.MinTemperatureC
		t := float32(0)
		if span > 0 {
			t = (cell.TemperatureC - grid.MinTemperatureC) / span
		}
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		return rgb{clampByte(t * 255), 0, clampByte((1 - t) * 255)}
	})
}

// WriteBiomes renders ocean and river as in the geography view, and every
// other cell by biome, re-derived from the cell's own elevation/
// temperature/moisture via biomes.Classify rather than trusted from
// Cell.Terrain: sync() is the last writer of Terrain every turn and only
// ever assigns Ocean/Desert/Mountains/Hills/Plains (see
// internal/world/world.go), so Forest/Tundra/Snow would otherwise never
// render here even though applyBiomes computes them upstream.
func WriteBiomes(w io.Writer, view View) error {
	return writePPM(w, view, func(x, y int) rgb {
		cell := view.Cell(x, y)
		switch {
		case cell.Terrain == grid.Ocean:
			return colorWaterDeep
		case cell.RiverVolume > riverVisibleVolume:
			return colorRiver
		}

		switch biomes.Classify(false, cell.ElevationM, cell.TemperatureC, cell.Moisture) {
		case grid.Desert:
			return colorDesert
		case grid.Forest:
			return colorForest
		case grid.Tundra:
			return colorTundra
		case grid.Snow:
			return colorSnow
		case grid.Mountains:
			return colorMountains
		case grid.Hills:
			return colorHills
		default:
			return colorPlains
		}
	})
}

// WriteAllPPMs emits the four standard views (geo.ppm, politics.ppm,
// climate.ppm, biomes.ppm) into dir. Any file-open or write failure is
// reported as a werr.CodeIO error naming the offending file.
func WriteAllPPMs(view View, dir string) error {
	files := []struct {
		name  string
		write func(io.Writer, View) error
	}{
		{"geo.ppm", WriteGeography},
		{"politics.ppm", WritePolitics},
		{"climate.ppm", WriteClimate},
		{"biomes.ppm", WriteBiomes},
	}

	for _, f := range files {
		path := dir + string(os.PathSeparator) + f.name
		if err := writeOne(path, view, f.write); err != nil {
			return werr.Wrap(werr.CodeIO, "writing "+f.name, err)
		}
	}
	return nil
}

func writeOne(path string, view View, write func(io.Writer, View) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return write(file, view)
}
