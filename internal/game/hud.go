package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel  = rl.NewColor(18, 18, 24, 200)
	colorAccent = rl.NewColor(108, 99, 255, 255)
	colorText   = rl.NewColor(230, 230, 236, 255)
	colorMuted  = rl.NewColor(160, 160, 170, 255)
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

func (g *Game) DrawUI() {
	f := g.frame

	gui.Panel(rl.Rectangle{X: 10, Y: 10, Width: 260, Height: 92}, g.World.Name)
	gui.Label(rl.Rectangle{X: 20, Y: 40, Width: 240, Height: 24},
		fmt.Sprintf("Collected: %d / %d", f.Collected, len(g.World.Collectibles)))
	gui.Label(rl.Rectangle{X: 20, Y: 66, Width: 240, Height: 24},
		fmt.Sprintf("Time: %.1fs", f.Elapsed))

	screenH := int32(rl.GetScreenHeight())
	rl.DrawText("WASD to move, Space to jump, mouse to look, wheel to zoom", 10, screenH-30, 18, colorMuted)

	if g.noticeTicks > 0 {
		screenW := int32(rl.GetScreenWidth())
		width := rl.MeasureText(g.notice, 24)
		rl.DrawText(g.notice, (screenW-width)/2, 40, 24, rl.Gold)
	}

	if !rl.IsCursorHidden() {
		rl.DrawText("Click to capture the mouse", 10, 110, 18, colorAccent)
	}

	if g.DebugMode {
		rl.DrawFPS(10, 140)
		c := g.World.Character
		rl.DrawText(fmt.Sprintf("Pos: (%.2f, %.2f, %.2f) vy %.3f", c.Position.X, c.Position.Y, c.Position.Z, c.VelocityY), 10, 165, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Grounded: %v  Walking: %v", f.Grounded, f.Walking), 10, 185, 16, rl.Green)
		b := g.World.Ball
		rl.DrawText(fmt.Sprintf("Ball: (%.2f, %.2f, %.2f) speed %.3f", b.Position.X, b.Position.Y, b.Position.Z, b.Speed()), 10, 205, 16, rl.Green)
		cam := g.World.Camera
		rl.DrawText(fmt.Sprintf("Camera: yaw %.2f pitch %.2f dist %.1f", cam.Yaw, cam.Pitch, cam.Distance), 10, 225, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Culled: %d", g.culled), 10, 245, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Kicks: %d  Landings: %d", g.kicks, g.landings), 10, 265, 16, rl.Green)
	}
}
