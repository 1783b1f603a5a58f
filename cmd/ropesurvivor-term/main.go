// Command ropesurvivor-term plays rope survivor in a terminal with the mouse.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/aaratha/rope-survivor/pkg/physics"
	"github.com/aaratha/rope-survivor/pkg/scene"
	"github.com/aaratha/rope-survivor/pkg/simulation"
)

var (
	styleFrame = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleRope  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBall  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEnemy = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePoint = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

type Game struct {
	screen tcell.Screen
	world  *simulation.World
	scene  *scene.Scene
	input  simulation.InputState

	width, height int
	paused        bool
}

func NewGame(cfg simulation.Config, opts ...simulation.Option) (*Game, error) {
	world, err := simulation.NewWorld(cfg, opts...)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	g := &Game{
		screen: screen,
		world:  world,
		scene:  scene.New(),
	}
	g.width, g.height = screen.Size()
	g.scene.Sync(world.Snapshot())
	return g, nil
}

// handleInput applies one terminal event; it returns false to quit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				g.input.RequestReset()
			case 'p', ' ':
				g.input.TogglePause()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		held := ev.Buttons()&tcell.Button1 != 0
		if held && !g.input.Held && g.scene.HUD().GameOver {
			g.input.RequestReset()
		}
		if held {
			g.input.Press()
		} else {
			g.input.Release()
		}
		cells := newGrid(g.scene.HUD().Frame, g.width, g.height)
		screen := physics.Vec2{X: float64(x) * cellWidth, Y: float64(y) * cellHeight}
		g.input.MoveTo(cells.toWorld(x, y), screen)

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) tick() {
	g.input.Viewport = viewport(g.width, g.height)
	if g.input.PauseToggled {
		g.paused = !g.paused
	}
	if !g.paused || g.input.ResetRequested {
		g.world.Step(&g.input)
	}
	g.input.EndFrame()
	g.scene.Sync(g.world.Snapshot())
}

func (g *Game) draw() {
	g.screen.Clear()

	hud := g.scene.HUD()
	cells := newGrid(hud.Frame, g.width, g.height)
	set := func(style tcell.Style, ch rune) func(x, y int) {
		return func(x, y int) {
			if cells.inside(x, y) {
				g.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}

	x0, y0 := cells.toCell(hud.Frame.Min())
	x1, y1 := cells.toCell(hud.Frame.Center.Add(hud.Frame.Half))
	corners := []physics.Vec2{cells.toWorld(x0, y0), cells.toWorld(x1, y0), cells.toWorld(x1, y1), cells.toWorld(x0, y1)}
	for i := range corners {
		cells.line(corners[i], corners[(i+1)%len(corners)], set(styleFrame, '·'))
	}

	g.scene.Each(scene.KindPoint, func(tf scene.Transform, sh scene.Shape) {
		cells.disc(physics.Vec2{X: tf.X, Y: tf.Y}, sh.Radius, set(stylePoint, '*'))
	})
	g.scene.Each(scene.KindEnemy, func(tf scene.Transform, sh scene.Shape) {
		cells.disc(physics.Vec2{X: tf.X, Y: tf.Y}, sh.Radius, set(styleEnemy, '@'))
	})

	path := g.scene.RopePath()
	for i := 1; i < len(path); i++ {
		cells.line(path[i-1], path[i], set(styleRope, '#'))
	}
	g.scene.Each(scene.KindRope, func(tf scene.Transform, sh scene.Shape) {
		if sh.Ball {
			cells.disc(physics.Vec2{X: tf.X, Y: tf.Y}, sh.Radius, set(styleBall, 'O'))
		}
	})

	g.drawText(0, 0, fmt.Sprintf("score %d  best %d", hud.Score, hud.Best))
	switch {
	case hud.GameOver:
		g.drawText(g.width/2-14, g.height/2, "GAME OVER - click or press r")
	case g.paused:
		g.drawText(g.width/2-3, g.height/2, "PAUSED")
	}

	g.screen.Show()
}

func (g *Game) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, styleText)
	}
}

func (g *Game) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "JSON file overlaid on the selected variant")
	variant := flag.String("variant", "", "variant preset: drag, pointer or growth")
	logPath := flag.String("log", "", "append game events to this file")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := simulation.Resolve(orEnv(*variant, "ROPE_SURVIVOR_VARIANT"), orEnv(*configPath, "ROPE_SURVIVOR_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	// The terminal owns stdout and stderr while the game runs
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "ropesurvivor ", log.LstdFlags)

	game, err := NewGame(cfg, simulation.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	logger.Printf("starting: targeting %s, %dx%d cells", cfg.Targeting, game.width, game.height)
	game.run(max(*tps, 1))
}

// orEnv returns v, or the environment variable key when v is empty
func orEnv(v, key string) string {
	if v != "" {
		return v
	}
	return os.Getenv(key)
}
