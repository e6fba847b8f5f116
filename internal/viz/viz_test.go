package viz

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/morph/internal/dataset"
)

func TestCanvasDepthBuffer(t *testing.T) {
	c := NewCanvas(10, 4)
	c.Put(3, 1, 500, 'B', nil)
	c.Put(3, 1, 200, 'A', nil) // nearer, wins
	c.Put(3, 1, 900, 'C', nil) // farther, loses

	line := strings.Split(c.String(), "\n")[1]
	if []rune(line)[3] != 'A' {
		t.Errorf("expected nearest glyph to win, got %q", line)
	}
}

func TestCanvasPutStringCentering(t *testing.T) {
	c := NewCanvas(11, 1)
	c.PutString(5, 0, 100, "abc", nil)
	if got := c.String(); got != "    abc    " {
		t.Errorf("centering: got %q", got)
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Put(-1, 0, 1, 'x', nil)
	c.Put(4, 0, 1, 'x', nil)
	c.Put(0, 2, 1, 'x', nil)
	if strings.ContainsRune(c.String(), 'x') {
		t.Error("out of bounds writes should be dropped")
	}
}

func TestProjectOriginLandsCenter(t *testing.T) {
	cam := NewCamera(60, 3000)
	x, y, depth, ok := cam.Project(mgl64.Vec3{}, 80, 24)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 40 || y != 12 {
		t.Errorf("expected center (40,12), got (%d,%d)", x, y)
	}
	if depth != 3000 {
		t.Errorf("depth: got %f", depth)
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	cam := NewCamera(60, 1000)
	if _, _, _, ok := cam.Project(mgl64.Vec3{0, 0, 2000}, 80, 24); ok {
		t.Error("points behind the camera must be culled")
	}
}

func TestProjectNearerPointsSmallerDepth(t *testing.T) {
	cam := NewCamera(60, 3000)
	_, _, near, _ := cam.Project(mgl64.Vec3{0, 0, 500}, 80, 24)
	_, _, far, _ := cam.Project(mgl64.Vec3{0, 0, -500}, 80, 24)
	if near >= far {
		t.Errorf("depth ordering wrong: near %f, far %f", near, far)
	}
}

func TestCameraSpringSettles(t *testing.T) {
	cam := NewCamera(60, 3000)
	cam.Zoom(0.5)
	for i := 0; i < 600; i++ {
		cam.Step()
	}
	if diff := cam.distance - cam.targetDist; diff > 1 || diff < -1 {
		t.Errorf("spring did not settle: distance %f, target %f", cam.distance, cam.targetDist)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	cam := NewCamera(60, 3000)
	cam.Orbit(0, 100)
	if cam.targetPitch > maxPitch {
		t.Errorf("pitch target exceeds clamp: %f", cam.targetPitch)
	}
}

func TestPickLabelField(t *testing.T) {
	src := &dataset.Source{Fields: []string{"name", "Symbol"}}
	if got := pickLabelField(src); got != "Symbol" {
		t.Errorf("expected Symbol, got %q", got)
	}
	src = &dataset.Source{Fields: []string{"name", "weight"}}
	if got := pickLabelField(src); got != "name" {
		t.Errorf("expected name, got %q", got)
	}
	if pickLabelField(nil) != "" {
		t.Error("nil source should have no label field")
	}
}
