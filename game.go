package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/aaratha/rope-survivor/pkg/physics"
	"github.com/aaratha/rope-survivor/pkg/scene"
	"github.com/aaratha/rope-survivor/pkg/simulation"
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	frameColor      = color.RGBA{60, 60, 80, 255}
	pointColor      = color.RGBA{250, 220, 90, 255}
	textColor       = color.RGBA{230, 230, 230, 255}
)

// Game is the ebiten front end: it feeds input into the world and draws the scene
type Game struct {
	world *simulation.World
	scene *scene.Scene
	input simulation.InputState
	face  text.Face

	width, height int
	paused        bool
	debug         bool
}

// NewGame builds a world from cfg and an empty scene
func NewGame(cfg simulation.Config, opts ...simulation.Option) (*Game, error) {
	world, err := simulation.NewWorld(cfg, opts...)
	if err != nil {
		return nil, err
	}
	g := &Game{
		world:  world,
		scene:  scene.New(),
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  int(cfg.Viewport.X),
		height: int(cfg.Viewport.Y),
	}
	g.scene.Sync(world.Snapshot())
	return g, nil
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	g.handleInput()

	if g.input.PauseToggled {
		g.paused = !g.paused
	}
	if !g.paused || g.input.ResetRequested {
		g.world.Step(&g.input)
	}
	g.input.EndFrame()

	g.scene.Sync(g.world.Snapshot())
	return nil
}

// handleInput processes keyboard, mouse and touch input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.input.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.input.RequestReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	x, y, held := pointer()
	if held && g.scene.HUD().GameOver && !g.input.Held {
		g.input.RequestReset()
	}
	if held {
		g.input.Press()
	} else {
		g.input.Release()
	}

	v := newView(g.scene.HUD().Frame, g.width, g.height)
	screen := physics.Vec2{X: float64(x), Y: float64(y)}
	g.input.MoveTo(v.toWorld(screen), screen)
	g.input.Viewport = physics.Vec2{X: float64(g.width), Y: float64(g.height)}
}

// pointer returns the first touch if any, otherwise the mouse cursor
func pointer() (x, y int, held bool) {
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y = ebiten.TouchPosition(touches[0])
		return x, y, true
	}
	x, y = ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	hud := g.scene.HUD()
	v := newView(hud.Frame, g.width, g.height)

	minX, minY := v.toScreen(hud.Frame.Min())
	vector.StrokeRect(screen, minX, minY, float32(2*hud.Frame.Half.X), float32(2*hud.Frame.Half.Y), 1, frameColor, false)

	g.scene.Each(scene.KindPoint, func(tf scene.Transform, sh scene.Shape) {
		x, y := v.toScreen(physics.Vec2{X: tf.X, Y: tf.Y})
		vector.DrawFilledCircle(screen, x, y, float32(sh.Radius), pointColor, true)
	})

	g.scene.Each(scene.KindEnemy, func(tf scene.Transform, sh scene.Shape) {
		x, y := v.toScreen(physics.Vec2{X: tf.X, Y: tf.Y})
		vector.DrawFilledCircle(screen, x, y, float32(sh.Radius), enemyColor(sh.Index), true)
	})

	// Rope segments, then the head and tail balls on top
	rope := ropeColor(hud.Score)
	path := g.scene.RopePath()
	for i := 1; i < len(path); i++ {
		x0, y0 := v.toScreen(path[i-1])
		x1, y1 := v.toScreen(path[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(hud.Thickness), rope, true)
	}
	g.scene.Each(scene.KindRope, func(tf scene.Transform, sh scene.Shape) {
		x, y := v.toScreen(physics.Vec2{X: tf.X, Y: tf.Y})
		vector.DrawFilledCircle(screen, x, y, float32(sh.Radius/2), rope, true)
		if sh.Ball {
			vector.DrawFilledCircle(screen, x, y, float32(sh.Radius), rope, true)
		}
	})

	g.drawHUD(screen, hud)
}

func (g *Game) drawHUD(screen *ebiten.Image, hud scene.HUD) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, fmt.Sprintf("score %d  best %d", hud.Score, hud.Best), g.face, op)

	var banner string
	switch {
	case hud.GameOver:
		banner = "GAME OVER - click or press R"
	case g.paused:
		banner = "PAUSED"
	}
	if banner != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(g.width)/2, float64(g.height)/2)
		op.ColorScale.ScaleWithColor(textColor)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, banner, g.face, op)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  entities %d", ebiten.ActualTPS(), g.scene.Count()), 8, g.height-20)
	}
}

// Layout implements ebiten.Game; the play frame follows the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// view maps world units to screen pixels for one frame
type view struct {
	offset physics.Vec2 // world position drawn at the screen origin
}

func newView(frame simulation.Rect, width, height int) view {
	return view{offset: frame.Center.Sub(physics.Vec2{X: float64(width) / 2, Y: float64(height) / 2})}
}

func (v view) toScreen(p physics.Vec2) (float32, float32) {
	s := p.Sub(v.offset)
	return float32(s.X), float32(s.Y)
}

func (v view) toWorld(screen physics.Vec2) physics.Vec2 {
	return screen.Add(v.offset)
}

// ropeColor shifts hue as the score grows
func ropeColor(score int) color.RGBA {
	return hsvColor(180+float64(score)*12, 0.6, 1)
}

func enemyColor(i int) color.RGBA {
	return hsvColor(350+float64(i%5)*6, 0.8, 0.9)
}

func hsvColor(h, s, v float64) color.RGBA {
	r, g, b := hsvToRGB(h, s, v)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
