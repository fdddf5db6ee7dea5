package camera

import (
	"testing"

	"VoxelForge/shared/config"
	"VoxelForge/shared/editor"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-3)
}

func TestInitialPose(t *testing.T) {
	cfg := config.DefaultConfig()
	c := New(cfg)
	p := c.Pose(512)

	if !near(p.Forward, mgl32.Vec3{0, 0, 1}) || !near(p.Left, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("basis forward=%v left=%v", p.Forward, p.Left)
	}
	if !near(p.Target, mgl32.Vec3{}) {
		t.Errorf("target = %v", p.Target)
	}
	if want := (mgl32.Vec3{0, cfg.CameraHeight, cfg.CameraRadius}); !near(p.Eye, want) {
		t.Errorf("eye = %v, want %v", p.Eye, want)
	}
	if p.UnitsPerPixel != cfg.CameraFovy/512 {
		t.Errorf("UnitsPerPixel = %v", p.UnitsPerPixel)
	}
}

func TestMovementIsQuantized(t *testing.T) {
	c := New(config.DefaultConfig())
	c.Speed = 1

	c.Update(editor.FrameInput{DT: 0.5, Right: true})
	if c.Position != (mgl32.Vec3{}) {
		t.Fatalf("moved before a whole step: %v", c.Position)
	}
	c.Update(editor.FrameInput{DT: 0.5, Right: true})
	if !near(c.Position, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("position = %v, want one step along left", c.Position)
	}

	c.Speed = 300
	c.Update(editor.FrameInput{DT: 1, Forward: true})
	if !near(c.Position, mgl32.Vec3{1, 0, -300}) {
		t.Errorf("position = %v after moving forward", c.Position)
	}
}

func TestRotationOnlyWithRightButton(t *testing.T) {
	c := New(config.DefaultConfig())

	c.Update(editor.FrameInput{Look: mgl32.Vec2{100, 0}})
	if c.Yaw != 0 {
		t.Fatalf("rotated without the right button: yaw=%v", c.Yaw)
	}

	quarter := (math32.Pi / 2) / c.Sensitivity
	c.Update(editor.FrameInput{Look: mgl32.Vec2{quarter, 0}, MouseRight: true})
	p := c.Pose(512)
	if !near(p.Forward, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("forward after quarter turn = %v", p.Forward)
	}
	if !near(p.Left, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("left after quarter turn = %v", p.Left)
	}
}

func TestVerticalMovement(t *testing.T) {
	c := New(config.DefaultConfig())
	c.Speed = 10
	c.Update(editor.FrameInput{DT: 1, Up: true})
	if c.Pose(512).Target[1] != 10 {
		t.Errorf("target y = %v, want 10", c.Pose(512).Target[1])
	}
}
