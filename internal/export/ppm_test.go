package export

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"worldsim/internal/grid"
	"worldsim/internal/politics"
)

// fakeView is a minimal, hand-built View for exercising the PPM writers
// without constructing a full world.World.
type fakeView struct {
	width, height int
	cells         map[[2]int]grid.Cell
	ownership     map[[2]int]int32
	factions      [grid.MaxFactions]politics.Faction
}

func (v *fakeView) Width() int  { return v.width }
func (v *fakeView) Height() int { return v.height }

func (v *fakeView) Cell(x, y int) grid.Cell {
	if c, ok := v.cells[[2]int{x, y}]; ok {
		return c
	}
	return grid.DefaultCell()
}

func (v *fakeView) Faction(i int) (politics.Faction, bool) {
	if i < 0 || i >= grid.MaxFactions {
		return politics.Faction{}, false
	}
	return v.factions[i], true
}

func (v *fakeView) Ownership(x, y int) int32 {
	if o, ok := v.ownership[[2]int{x, y}]; ok {
		return o
	}
	return -1
}

func (v *fakeView) TemperatureRange() (float32, float32) { return grid.MinTemperatureC, grid.MaxTemperatureC }
func (v *fakeView) ElevationRange() (float32, float32)   { return -grid.MaxElevationM, grid.MaxElevationM }

func newFakeView() *fakeView {
	return &fakeView{
		width:  2,
		height: 2,
		cells:  map[[2]int]grid.Cell{},
		ownership: map[[2]int]int32{},
	}
}

func TestWritePPMHeaderIsBitExact(t *testing.T) {
	v := newFakeView()
	var buf bytes.Buffer

	if err := WriteGeography(&buf, v); err != nil {
		t.Fatalf("WriteGeography: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	scanner.Scan()
	if scanner.Text() != "P3" {
		t.Fatalf("line 1 = %q, want P3", scanner.Text())
	}
	scanner.Scan()
	if scanner.Text() != "2 2" {
		t.Fatalf("line 2 = %q, want %q", scanner.Text(), "2 2")
	}
	scanner.Scan()
	if scanner.Text() != "255" {
		t.Fatalf("line 3 = %q, want 255", scanner.Text())
	}
}

func TestWriteGeographyColorsWaterAndLandDistinctly(t *testing.T) {
	v := newFakeView()
	v.cells[[2]int{0, 0}] = grid.Cell{Terrain: grid.Ocean}
	v.cells[[2]int{1, 0}] = grid.Cell{Terrain: grid.Plains, ElevationM: 1500}

	var buf bytes.Buffer
	if err := WriteGeography(&buf, v); err != nil {
		t.Fatalf("WriteGeography: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	row0 := lines[len(lines)-2]
	if !strings.HasPrefix(row0, "0 0 128") {
		t.Fatalf("expected water pixel first, got %q", row0)
	}
	if !strings.HasSuffix(row0, "127 127 127") {
		t.Fatalf("expected 1500m land pixel as grayscale 127, got %q", row0)
	}
}

func TestWritePoliticsUsesFactionColor(t *testing.T) {
	v := newFakeView()
	v.factions[3] = politics.Faction{ID: 3, ColorRGB: [3]uint8{9, 8, 7}}
	v.cells[[2]int{0, 0}] = grid.Cell{Terrain: grid.Plains}
	v.ownership[[2]int{0, 0}] = 3

	var buf bytes.Buffer
	if err := WritePolitics(&buf, v); err != nil {
		t.Fatalf("WritePolitics: %v", err)
	}

	if !strings.Contains(buf.String(), "9 8 7") {
		t.Fatalf("expected faction color 9 8 7 in output, got %s", buf.String())
	}
}

func TestWriteClimateMapsTemperatureIntoRedBlueRamp(t *testing.T) {
	v := newFakeView()
	v.cells[[2]int{0, 0}] = grid.Cell{TemperatureC: grid.MaxTemperatureC}
	v.cells[[2]int{1, 0}] = grid.Cell{TemperatureC: grid.MinTemperatureC}

	var buf bytes.Buffer
	if err := WriteClimate(&buf, v); err != nil {
		t.Fatalf("WriteClimate: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	row0 := lines[len(lines)-2]
	if !strings.HasPrefix(row0, "255 0 0") {
		t.Fatalf("expected hottest cell to render as pure red, got %q", row0)
	}
}

func TestWriteBiomesRendersDesert(t *testing.T) {
	v := newFakeView()
	v.cells[[2]int{0, 0}] = grid.Cell{Terrain: grid.Plains, ElevationM: 100, TemperatureC: 25, Moisture: 0.1}

	var buf bytes.Buffer
	if err := WriteBiomes(&buf, v); err != nil {
		t.Fatalf("WriteBiomes: %v", err)
	}
	if !strings.Contains(buf.String(), "240 230 140") {
		t.Fatalf("expected desert tan color in output")
	}
}

// TestWriteBiomesRendersForestTundraSnow guards against WriteBiomes
// trusting the post-sync Cell.Terrain, which only ever holds
// Ocean/Desert/Mountains/Hills/Plains (see internal/world/world.go sync):
// Forest/Tundra/Snow must still render by re-deriving biome from the
// cell's elevation/temperature/moisture.
func TestWriteBiomesRendersForestTundraSnow(t *testing.T) {
	v := newFakeView()
	v.width, v.height = 3, 1
	// Terrain deliberately set to Plains (as sync would leave it) to prove
	// the color comes from re-derived classification, not Cell.Terrain.
	v.cells[[2]int{0, 0}] = grid.Cell{Terrain: grid.Plains, ElevationM: 100, TemperatureC: 20, Moisture: 0.8}  // Forest
	v.cells[[2]int{1, 0}] = grid.Cell{Terrain: grid.Plains, ElevationM: 100, TemperatureC: 0, Moisture: 0.5}   // Tundra
	v.cells[[2]int{2, 0}] = grid.Cell{Terrain: grid.Plains, ElevationM: 100, TemperatureC: -20, Moisture: 0.5} // Snow

	var buf bytes.Buffer
	if err := WriteBiomes(&buf, v); err != nil {
		t.Fatalf("WriteBiomes: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "34 139 34") {
		t.Errorf("expected forest green in output, got %s", out)
	}
	if !strings.Contains(out, "200 200 200") {
		t.Errorf("expected tundra gray in output, got %s", out)
	}
	if !strings.Contains(out, "255 255 255") {
		t.Errorf("expected snow white in output, got %s", out)
	}
}
