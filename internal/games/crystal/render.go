package crystal

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/crystal-run/internal/core"
	"github.com/vovakirdan/crystal-run/internal/games/crystal/anim"
	"github.com/vovakirdan/crystal-run/internal/games/crystal/sim"
)

// Visual characters for rendering
const (
	GroundChar  = '═'
	BedrockChar = '░'
	CeilingChar = '▀'
	CrystalChar = '◆'
	StalactChar = '▼'
	BoneChar    = '•'
	TailChar    = '~'
	FootChar    = '▂'
	HeadChar    = '◉'
)

var blockChars = []rune{'▓', '▒', '█'}

// World window shown on screen along the track and in height.
const (
	viewMinX = -4.0
	viewMaxX = 16.0
	viewMaxZ = 4.0
)

// projection maps world (x, z) to screen cells.
type projection struct {
	w, groundY int
	colsPerX   float64
	rowsPerZ   float64
}

func newProjection(w, h int) projection {
	groundY := h - 3
	if groundY < 2 {
		groundY = h - 1
	}
	return projection{
		w:        w,
		groundY:  groundY,
		colsPerX: float64(w) / (viewMaxX - viewMinX),
		rowsPerZ: float64(groundY-1) / viewMaxZ,
	}
}

func (p projection) col(x float64) int {
	return int(math.Round((x - viewMinX) * p.colsPerX))
}

func (p projection) row(z float64) int {
	return p.groundY - 1 - int(math.Round(z*p.rowsPerZ))
}

func (p projection) cell(v core.Vec3) (int, int) {
	return p.col(v.X), p.row(v.Z)
}

// Render draws the cave, crystals, blocks, runner and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	proj := newProjection(dst.Width(), dst.Height())

	dst.DrawHLine(0, 1, dst.Width(), CeilingChar, core.ColorGray)
	dst.DrawHLine(0, proj.groundY, dst.Width(), GroundChar, core.ColorGray)
	for y := proj.groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), BedrockChar, core.ColorGray)
	}

	for _, c := range g.session.Crystals() {
		g.drawCrystal(dst, proj, c)
	}
	for _, o := range g.session.Obstacles() {
		g.drawBlock(dst, proj, o)
	}

	reg := g.session.Registry()
	if visible, ok := reg.Visible(g.session.PlayerHandle()); ok && visible {
		g.drawRunner(dst, proj)
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.session.Over() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Stats().Scores))
	}
}

// drawCrystal places a crystal on the cave wall. Crystals on the upper
// half hang from the ceiling; the rest glint along the far wall.
func (g *Game) drawCrystal(dst *core.Screen, proj projection, c *sim.Crystal) {
	pos := c.Pos(g.cfg.Decor.CaveRadius)
	x, y := proj.cell(pos)
	color := g.crystalColors.Color(c.Palette)
	if math.Sin(c.Angle) > 0.5 {
		dst.SetWithColor(x, 2, StalactChar, color)
		return
	}
	if y <= 1 || y >= proj.groundY {
		return
	}
	dst.SetWithColor(x, y, CrystalChar, color)
}

func (g *Game) drawBlock(dst *core.Screen, proj projection, o *sim.Obstacle) {
	left := proj.col(o.X - o.Radius)
	right := proj.col(o.X + o.Radius)
	top := proj.row(o.Height)
	color := g.obstacleColors.Color(o.Palette)
	fill := blockChars[int(o.Spin*float64(len(blockChars)))%len(blockChars)]

	for y := top; y < proj.groundY; y++ {
		for x := left; x < right; x++ {
			r := fill
			switch {
			case y == top && x == left:
				r = '◢'
			case y == top && x == right-1:
				r = '◣'
			}
			dst.SetWithColor(x, y, r, color)
		}
	}
}

// drawRunner connects the animated joints with line segments. Joint
// positions are relative to the player, who stands at the origin.
func (g *Game) drawRunner(dst *core.Screen, proj projection) {
	body := g.session.Player()
	frame := g.session.Frame()
	origin := core.V3(0, 0, body.Z)
	at := func(v core.Vec3) (int, int) { return proj.cell(origin.Add(v)) }

	line := func(a, b core.Vec3, r rune, c core.Color) {
		x0, y0 := at(a)
		x1, y1 := at(b)
		dst.DrawLine(x0, y0, x1, y1, r, c)
	}

	// Far leg first so the near leg draws over it.
	legs := []struct {
		pose  anim.LegPose
		color core.Color
	}{
		{frame.Pose.Right, core.ColorGreen},
		{frame.Pose.Left, core.ColorBrightGreen},
	}
	for _, leg := range legs {
		line(leg.pose.Hip, leg.pose.Knee, BoneChar, leg.color)
		line(leg.pose.Knee, leg.pose.Foot, BoneChar, leg.color)
		fx, fy := at(leg.pose.Foot)
		dst.SetWithColor(fx, fy, FootChar, leg.color)
	}

	prev := frame.Pose.Hip
	for _, seg := range frame.Tail {
		line(prev, seg, TailChar, core.ColorGreen)
		prev = seg
	}

	hip := frame.Pose.Hip
	shoulder := hip.Add(core.V3(0.5, 0, 0.35))
	head := hip.Add(core.V3(0.85, 0, 0.9))
	line(hip, shoulder, '█', core.ColorBrightGreen)
	line(shoulder, head, '▌', core.ColorBrightGreen)
	hx, hy := at(head)
	dst.SetWithColor(hx, hy, HeadChar, core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.State()
	scoreText := fmt.Sprintf(" Score: %d  Hits: %d ", st.Score, st.Hits)
	if g.jumpFlash > 0 {
		scoreText += "↑ "
	}
	dst.DrawText(2, 0, scoreText)

	var right string
	if st.Lives >= 0 {
		right = " " + strings.Repeat("♥", st.Lives) + strings.Repeat("♡", max(0, g.variant.Lives-st.Lives))
	}
	right += fmt.Sprintf(" Spd: %.1f ", g.session.Speed())
	dst.DrawTextColor(dst.Width()-len([]rune(right))-2, 0, right, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
