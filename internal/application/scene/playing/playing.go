// Package playing provides the locomotion scene: live or replayed input
// drives one character, drawn as a top-down gizmo view.
package playing

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene"
	"github.com/younwookim/locomotion/internal/application/state"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/logger"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorGrid        = color.RGBA{40, 40, 64, 255}
	colorPlatform    = color.RGBA{80, 80, 100, 255}
	colorGrounded    = color.RGBA{220, 50, 50, 255}
	colorAirborne    = color.RGBA{0, 220, 220, 255}
	colorVertical    = color.RGBA{60, 220, 60, 255}
	colorHorizontal  = color.RGBA{70, 110, 255, 255}
	colorFacing      = color.RGBA{230, 230, 230, 255}
	colorJumpHeight  = color.RGBA{255, 215, 0, 255}
	colorElevationBG = color.RGBA{60, 60, 60, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 128}
)

const (
	maxEvents      = 4
	elevationWidth = 24

	// velocityRayScale converts units/second into world units of ray length.
	velocityRayScale = 0.25
)

// Options configures a Playing scene.
type Options struct {
	// RecordPath enables input recording; saved when the scene exits.
	RecordPath string
	// Replay, when set, drives the character instead of live input.
	Replay *replay.ReplayData
	// Controls reads live input. Defaults to a new system.InputSystem.
	Controls system.InputSource
}

// Playing is the main locomotion scene
type Playing struct {
	config   *config.GameConfig
	world    *system.World
	state    state.GameState
	resume   state.GameState
	controls system.InputSource

	replayer       *replay.Replayer
	recorder       *replay.Recorder
	recordFilename string

	events    []string
	setCursor func(captured bool)

	screenW int
	screenH int
	ppu     float64
}

// New creates a new Playing scene.
func New(cfg *config.GameConfig, opts Options) *Playing {
	controls := opts.Controls
	if controls == nil {
		controls = system.NewInputSystem()
	}

	p := &Playing{
		config:         cfg,
		world:          system.LoadWorld(cfg),
		state:          state.StatePlaying,
		controls:       controls,
		recordFilename: opts.RecordPath,
		setCursor:      setEbitenCursor,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		ppu:            cfg.Display.PixelsPerUnit,
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.state = state.StateReplaying
	}
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(cfg.Player.MoveMode, cfg.Display.Framerate)
	}

	return p
}

func setEbitenCursor(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.applyCapture(true)
	attrs := []any{"mode", p.config.Player.MoveMode, "state", p.state}
	if p.recorder != nil {
		attrs = append(attrs, "record", p.recordFilename)
	}
	if p.replayer != nil {
		attrs = append(attrs, "replayFrames", p.replayer.TotalFrames())
	}
	logger.L().Info("playing scene entered", attrs...)
}

// OnExit implements scene.Scene. A pending recording is saved here.
func (p *Playing) OnExit() {
	p.applyCapture(false)
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
}

// Update advances one tick (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	live := p.controls.ReadInput()
	if live.Pause {
		p.togglePause()
		return nil, nil
	}
	if !p.state.Ticking() {
		return nil, nil
	}

	in := live
	if p.replayer != nil {
		var ok bool
		in, ok = p.replayer.NextInput()
		if !ok {
			p.finishReplay()
			return nil, nil
		}
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.world.Locomotion.Tick(in, dt)

	return nil, nil // nil = stay on this scene
}

func (p *Playing) togglePause() {
	if p.state == state.StatePaused {
		p.state = p.resume
		p.applyCapture(true)
	} else {
		p.resume = p.state
		p.state = state.StatePaused
		p.applyCapture(false)
	}
	p.event("pause toggled", "state", p.state)
}

func (p *Playing) applyCapture(on bool) {
	if in, ok := p.controls.(*system.InputSystem); ok {
		in.SetCapture(on)
	}
	if p.setCursor != nil {
		p.setCursor(on)
	}
}

func (p *Playing) finishReplay() {
	pos := p.world.Character.Position()
	p.event("replay finished",
		"frames", p.replayer.TotalFrames(),
		"x", pos.X(), "y", pos.Y(), "z", pos.Z(),
		"grounded", p.world.Character.Grounded())
	p.state = state.StatePaused
	p.resume = state.StatePlaying
	p.replayer = nil
	p.applyCapture(false)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	p.recorder.Stop()
	if err := p.recorder.Save(filename); err != nil {
		logger.L().Error("failed to save recording", "file", filename, "err", err)
		return
	}
	p.event("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// event logs msg and keeps it for the on-screen event list.
func (p *Playing) event(msg string, args ...any) {
	logger.L().Info(msg, args...)
	p.events = append(p.events, msg)
	if len(p.events) > maxEvents {
		p.events = p.events[len(p.events)-maxEvents:]
	}
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the simulated world
func (p *Playing) World() *system.World {
	return p.world
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

// Events returns the most recent scene events, oldest first
func (p *Playing) Events() []string {
	return p.events
}

// project maps a world point onto the top-down view centred on center.
// The terrain's forward plane axis points up the screen.
func (p *Playing) project(world, center mgl64.Vec3) (float32, float32) {
	plane, _ := p.world.Terrain.Decompose(world)
	origin, _ := p.world.Terrain.Decompose(center)
	d := plane.Sub(origin)
	x := float64(p.screenW-elevationWidth)/2 + d.X()*p.ppu
	y := float64(p.screenH)/2 - d.Y()*p.ppu
	return float32(x), float32(y)
}

// elevationY maps a height onto the elevation bar.
func (p *Playing) elevationY(h float64) float32 {
	top := p.config.Player.JumpHeight * 2
	if top <= 0 {
		top = 1
	}
	t := mgl64.Clamp(h/top, 0, 1)
	return float32(float64(p.screenH-8) - t*float64(p.screenH-16))
}

func groundedColor(grounded bool) color.Color {
	if grounded {
		return colorGrounded
	}
	return colorAirborne
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	center := p.world.Character.Position()
	p.drawGrid(screen, center)
	p.drawPlatforms(screen, center)
	p.drawCharacter(screen, center)
	p.drawElevation(screen)
	p.drawHUD(screen)

	if p.state == state.StatePaused {
		vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-60, p.screenH/2-20)
	}
}

func (p *Playing) drawGrid(screen *ebiten.Image, center mgl64.Vec3) {
	if p.ppu <= 0 {
		return
	}
	origin, _ := p.world.Terrain.Decompose(center)
	w := float64(p.screenW - elevationWidth)
	halfW := w / 2 / p.ppu
	halfH := float64(p.screenH) / 2 / p.ppu

	for gx := float64(int(origin.X()-halfW)) - 1; gx <= origin.X()+halfW+1; gx++ {
		x := float32(w/2 + (gx-origin.X())*p.ppu)
		vector.StrokeLine(screen, x, 0, x, float32(p.screenH), 1, colorGrid, false)
	}
	for gy := float64(int(origin.Y()-halfH)) - 1; gy <= origin.Y()+halfH+1; gy++ {
		y := float32(float64(p.screenH)/2 - (gy-origin.Y())*p.ppu)
		vector.StrokeLine(screen, 0, y, float32(w), y, 1, colorGrid, false)
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, center mgl64.Vec3) {
	terrain := p.world.Terrain
	for _, pl := range terrain.Platforms {
		minX, minY := p.project(terrain.Compose(pl.Min, pl.Height), center)
		maxX, maxY := p.project(terrain.Compose(pl.Max, pl.Height), center)
		// forward is up the screen, so the max corner has the smaller y
		vector.DrawFilledRect(screen, minX, maxY, maxX-minX, minY-maxY, colorPlatform, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f", pl.Height), int(minX)+2, int(maxY)+2)
	}
}

func (p *Playing) drawCharacter(screen *ebiten.Image, center mgl64.Vec3) {
	ch := p.world.Character
	x, y := p.project(center, center)

	vector.DrawFilledCircle(screen, x, y, 6, groundedColor(ch.Grounded()), true)

	fx, fy := p.project(center.Add(ch.Forward()), center)
	vector.StrokeLine(screen, x, y, fx, fy, 1, colorFacing, true)

	m := ch.Motion()
	hx, hy := p.project(center.Add(m.HorizontalVelocity.Mul(velocityRayScale)), center)
	vector.StrokeLine(screen, x, y, hx, hy, 2, colorHorizontal, true)
}

// drawElevation draws the side bar: ground, jump height target, current
// height and the vertical velocity ray.
func (p *Playing) drawElevation(screen *ebiten.Image) {
	left := float32(p.screenW - elevationWidth)
	mid := left + elevationWidth/2
	vector.DrawFilledRect(screen, left, 0, elevationWidth, float32(p.screenH), colorElevationBG, false)

	ground := p.elevationY(p.config.Terrain.GroundHeight)
	vector.StrokeLine(screen, left, ground, float32(p.screenW), ground, 1, colorPlatform, false)

	body := p.world.Body
	_, base := p.world.Terrain.Decompose(p.world.Terrain.Spawn)
	target := p.elevationY(base + p.config.Player.JumpHeight)
	vector.StrokeLine(screen, left, target, float32(p.screenW), target, 1, colorJumpHeight, false)

	h := body.Height()
	y := p.elevationY(h)
	vector.DrawFilledCircle(screen, mid, y, 4, groundedColor(body.IsGrounded()), true)

	up := p.world.Character.Up()
	vUp := p.world.Character.Motion().VerticalVelocity.Dot(up)
	vy := p.elevationY(h + vUp*velocityRayScale)
	vector.StrokeLine(screen, mid, y, mid, vy, 2, colorVertical, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	for i, line := range p.hudLines() {
		ebitenutil.DebugPrintAt(screen, line, 4, 4+i*14)
	}
	for i, ev := range p.events {
		ebitenutil.DebugPrintAt(screen, ev, 4, p.screenH-14*(len(p.events)-i)-4)
	}
}

// hudLines returns the status text shown in the top-left corner.
func (p *Playing) hudLines() []string {
	ch := p.world.Character
	m := ch.Motion()
	lines := []string{
		fmt.Sprintf("%s  mode:%s", p.state, p.config.Player.MoveMode),
		fmt.Sprintf("grounded:%t  height:%.2f", ch.Grounded(), p.world.Body.Height()),
		fmt.Sprintf("vVel:%.2f  hVel:%.2f", m.VerticalVelocity.Dot(ch.Up()), m.HorizontalVelocity.Len()),
		fmt.Sprintf("cam yaw:%.0f  pitch:%.0f", p.world.Camera.Yaw(), p.world.Camera.Pitch()),
	}
	if in, ok := p.controls.(*system.InputSystem); ok {
		lines = append(lines, "device: "+in.ActiveDevice().String())
	}
	if p.replayer != nil {
		lines = append(lines, fmt.Sprintf("replay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames()))
	}
	if p.recorder != nil {
		lines = append(lines, fmt.Sprintf("rec %d", p.recorder.FrameCount()))
	}
	lines = append(lines, "WASD/stick: move | Space: jump | Shift: sprint | ESC: pause")
	return lines
}
