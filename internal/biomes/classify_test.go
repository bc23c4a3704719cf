package biomes

import (
	"testing"

	"worldsim/internal/grid"
)

func TestClassifyWaterAlwaysOcean(t *testing.T) {
	if got := Classify(true, 5000, 40, 1); got != grid.Ocean {
		t.Errorf("water cell classified as %s, want Ocean", got)
	}
}

func TestClassifyMountainsBeatsEverythingElse(t *testing.T) {
	got := Classify(false, 2500, -50, 1) // would also match the Snow threshold
	if got != grid.Mountains {
		t.Errorf("got %s, want Mountains", got)
	}
}

func TestClassifyDesert(t *testing.T) {
	got := Classify(false, 100, 25, 0.1)
	if got != grid.Desert {
		t.Errorf("got %s, want Desert", got)
	}
}

func TestClassifyForest(t *testing.T) {
	got := Classify(false, 100, 20, 0.8)
	if got != grid.Forest {
		t.Errorf("got %s, want Forest", got)
	}
}

func TestClassifyPlainsIsTheDefault(t *testing.T) {
	got := Classify(false, 100, 10, 0.3)
	if got != grid.Plains {
		t.Errorf("got %s, want Plains", got)
	}
}

func TestMoistureFromRainfallSaturatesAtOne(t *testing.T) {
	if m := MoistureFromRainfall(10, 2); m != 1 {
		t.Errorf("expected saturation to 1, got %f", m)
	}
}

func TestMoistureFromRainfallScalesLinearly(t *testing.T) {
	if m := MoistureFromRainfall(1, 2); m != 0.5 {
		t.Errorf("expected 0.5, got %f", m)
	}
}

func TestMoistureFromRainfallGuardsZeroReference(t *testing.T) {
	if m := MoistureFromRainfall(5, 0); m != 0 {
		t.Errorf("expected 0 for non-positive reference, got %f", m)
	}
}
