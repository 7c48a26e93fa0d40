package sleigh

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/sleighride/internal/core"
)

// Minimum terminal size for a readable world.
const (
	MinScreenW = 40
	MinScreenH = 12
)

var layerGlyphs = [3]rune{'░', '▒', '▓'}

// viewport maps world units onto screen cells. Row 0 is the HUD.
type viewport struct {
	w, h   int
	worldW float64
	worldH float64
	dx     int // Shake offset in cells
	dy     int
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x/v.worldW*float64(v.w))) + v.dx
}

func (v viewport) row(y float64) int {
	return 1 + int(math.Floor(y/v.worldH*float64(v.h-1))) + v.dy
}

func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	s := g.session
	v := viewport{w: dst.Width(), h: dst.Height(), worldW: g.cfg.World.Width, worldH: g.cfg.World.Height}
	if sh := s.Shake(); sh > 1 {
		v.dx = int(math.Round(math.Sin(s.Clock()*53) * sh / 10))
		v.dy = int(math.Round(math.Cos(s.Clock()*47) * sh / 20))
	}

	level := s.LevelConfig()
	renderSky(dst, s, v, level.LightsOut)
	renderTerrain(dst, s, v, level.Terrain, level.Ground, level.LightsOut)
	if level.Weather == WeatherSnowstorm || level.Weather == WeatherWind {
		renderBlizzard(dst, s, v, level.WeatherIntensity)
	}
	renderEntities(dst, s, v)
	renderPlayer(dst, s, v)
	renderParticles(dst, s, v)
	if s.Flash() > 0 {
		renderFlash(dst, s.Flash())
	}
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func renderSky(dst *core.Screen, s *Session, v viewport, dark bool) {
	starColor := core.ColorGray
	if dark {
		starColor = core.ColorSlate
	}
	for _, st := range s.Sky.Stars {
		glyph := '.'
		if math.Sin(s.Clock()*2+st.Phase) > 0.8 {
			glyph = '*'
		}
		dst.SetColored(v.col(st.X)-v.dx, v.row(st.Y)-v.dy, glyph, starColor)
	}
	for _, c := range s.Sky.Clouds {
		n := max(2, int(c.Scale*4))
		dst.DrawHLine(v.col(c.X)-v.dx, v.row(c.Y)-v.dy, n, '~', core.ColorGray)
	}
}

func renderTerrain(dst *core.Screen, s *Session, v viewport, terrain string, palette []string, dark bool) {
	bottom := v.row(s.cfg.World.Height)
	for i, layer := range s.Terrain.Layers {
		c := core.ColorGray
		if i < len(palette) {
			c = core.ParseColor(palette[i])
		}
		if dark {
			c = core.ColorSlate
		}
		glyph := layerGlyphs[i]

		if terrain == TerrainCity {
			for _, b := range layer.Blocks {
				x := b.X + layer.Offset
				if x > s.cfg.World.Width || x+b.W < 0 {
					continue
				}
				r := v.rect(core.Box{X: x, Y: s.cfg.World.Height - b.H, W: b.W, H: b.H})
				dst.DrawRect(r, glyph, c)
				if i == 2 {
					renderWindows(dst, r, s.Clock(), dark)
				}
			}
			continue
		}

		for col := 0; col < v.w; col++ {
			wx := (float64(col) + 0.5) / float64(v.w) * s.cfg.World.Width
			top := v.row(s.cfg.World.Height - layer.HeightAt(wx))
			for y := top; y < bottom; y++ {
				dst.SetColored(col, y, glyph, c)
			}
			if terrain == TerrainSpikes && top < bottom {
				dst.SetColored(col, top, '^', c)
			}
		}
	}
}

// renderWindows lights a sparse window pattern on near city blocks.
func renderWindows(dst *core.Screen, r core.Rect, clock float64, dark bool) {
	lit := core.ColorYellow
	if dark {
		lit = core.ColorGray
	}
	for y := r.Y + 1; y < r.Bottom(); y += 2 {
		for x := r.X + 1; x < r.Right()-1; x += 2 {
			if int(float64(x*7+y*13)+clock)%5 == 0 {
				dst.SetColored(x, y, '▪', lit)
			}
		}
	}
}

func renderBlizzard(dst *core.Screen, s *Session, v viewport, intensity float64) {
	flakes := int(intensity * 6)
	for i := 0; i < flakes; i++ {
		fi := float64(i)
		x := math.Mod(fi*197.3-s.Clock()*(300+fi*7), s.cfg.World.Width)
		if x < 0 {
			x += s.cfg.World.Width
		}
		y := math.Mod(fi*89.7+s.Clock()*(80+fi*3), s.cfg.World.Height)
		dst.SetColored(v.col(x), v.row(y), '·', core.ColorWhite)
	}
}

func renderEntities(dst *core.Screen, s *Session, v viewport) {
	for _, m := range s.Pools.Landmarks {
		r := v.rect(m.Box)
		dst.DrawBox(r, core.ColorGold)
		name := m.Name
		if len(name) > r.W-2 {
			name = name[:max(0, r.W-2)]
		}
		dst.DrawTextColored(r.X+1, r.Y+1, name, core.ColorGold)
	}
	for _, u := range s.Pools.Powerups {
		r := v.rect(u.Box)
		dst.DrawRect(r, powerupGlyph(u.Kind), powerupColor(u.Kind))
	}
	for _, l := range s.Pools.Letters {
		c := core.ColorYellow
		switch l.Variant {
		case LetterGolden:
			c = core.ColorGold
		case LetterSad:
			c = core.ColorGray
		case LetterVillain:
			c = core.ColorCrimson
		}
		dst.DrawRect(v.rect(l.Box), '✉', c)
	}
	for _, o := range s.Pools.Obstacles {
		glyph, c := obstacleGlyph(o.Kind)
		dst.DrawRect(v.rect(o.Box), glyph, c)
	}
	for _, pr := range s.Pools.Projectiles {
		for _, t := range pr.Trail {
			dst.SetColored(v.col(t.X), v.row(t.Y), '·', core.ColorIce)
		}
		dst.SetColored(v.col(pr.X), v.row(pr.Y), 'o', core.ColorWhite)
	}
}

func renderPlayer(dst *core.Screen, s *Session, v viewport) {
	p := s.Player
	if p.InvincibleTimer > 0 && int(s.Clock()*10)%2 == 0 {
		return
	}
	r := v.rect(p.Box)
	c := core.ColorBrightRed
	if p.HealingTimer > 0 {
		c = core.ColorBrightGreen
	} else if p.Exhausted {
		c = core.ColorGray
	}
	sprite := []rune("~<=[#]>")
	switch {
	case p.Angle < -0.2:
		sprite = []rune("~<=[#]/")
	case p.Angle > 0.2:
		sprite = []rune("~<=[#]\\")
	}
	y := r.Y + r.H/2
	for i := 0; i < r.W; i++ {
		dst.SetColored(r.X+i, y, sprite[i*len(sprite)/r.W], c)
	}
	if p.SpeedActive() {
		dst.SetColored(r.X-1, y, '»', core.ColorCyan)
	}
}

func renderParticles(dst *core.Screen, s *Session, v viewport) {
	for _, p := range s.Particles.All() {
		if p.Alpha() < 0.15 {
			continue
		}
		dst.SetColored(v.col(p.X), v.row(p.Y), particleGlyph(p), p.Color)
	}
}

func renderFlash(dst *core.Screen, amount float64) {
	if amount < 0.05 {
		return
	}
	for y := 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, '░', core.ColorBrightWhite)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.session.HUD()
	lives := strings.Repeat("♥", hud.Lives) + strings.Repeat("·", max(0, hud.MaxLives-hud.Lives))
	left := fmt.Sprintf(" %s  ❄%d  %s", lives, hud.Snowballs, hud.LevelName)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("Score %d ", hud.Score)
	if g.mode == ModeStory {
		t := math.Max(0, hud.TimeLeft)
		right = fmt.Sprintf("%d:%02d  %s", int(t)/60, int(t)%60, right)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightWhite)

	if m := hud.Mission; m.Type != "" && dst.Height() > 3 {
		status := fmt.Sprintf("%s %.0f/%.0f", m.Objective, m.Progress, m.Target)
		c := core.ColorGray
		if m.Complete {
			status = "✓ " + m.Objective
			c = core.ColorGreen
		}
		dst.DrawTextColored(1, 1, status, c)
	}
	if d := hud.Dialogue; d != nil {
		dst.DrawTextCentered(2, fmt.Sprintf("%s: %s", d.Speaker, d.Text), core.ColorIce)
	}
	if w := hud.Wish; w != nil {
		c := core.ColorYellow
		if w.Variant == LetterVillain {
			c = core.ColorCrimson
		}
		dst.DrawTextCentered(3, "“"+w.Message+"”", c)
	}
	if len(hud.Popups) > 0 {
		last := hud.Popups[len(hud.Popups)-1]
		dst.DrawTextColored(1, dst.Height()-1, "+"+strings.ToUpper(last.Kind.String()), powerupColor(last.Kind))
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateIntro:
		title := g.cfg.Levels[g.session.Level()].Name
		if g.mode == ModeEndless {
			title = "Endless Flight"
		}
		g.drawMessage(dst, title, g.cfg.Levels[g.session.Level()].Description)
	case StatePlaying:
		if g.driver.Frozen() {
			g.drawMessage(dst, "PAUSED", "Press P to resume")
		}
	case StateGameOver:
		reason := "The route collapsed"
		if g.session.Player.Lives <= 0 {
			reason = "The sleigh went down"
		} else if g.mode == ModeStory && g.session.TimeLeft() <= 0 {
			reason = "Out of time"
		}
		g.drawMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Score: %d  |  R to retry", reason, g.session.Score()))
	case StateLevelComplete:
		g.drawMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("Score: %d  |  Enter: next level  R: replay", g.session.Score()))
	case StateVictory:
		g.drawMessage(dst, "DELIVERY COMPLETE", fmt.Sprintf("Wishes: %d  |  Score: %d  |  R to fly again", g.session.Wishes(), g.session.Score()))
	}
}

// drawMessage draws a message box in the center of the screen.
func (g *Game) drawMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	boxW := min(w-2, max(len([]rune(title)), len([]rune(subtitle)))+4)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	if r := []rune(subtitle); len(r) > boxW-2 {
		subtitle = string(r[:boxW-2])
	}
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}

func powerupGlyph(k PowerupKind) rune {
	switch k {
	case PowerupSpeed:
		return '»'
	case PowerupAmmo:
		return '❄'
	case PowerupBlast:
		return '✶'
	case PowerupHealing:
		return '+'
	case PowerupLife:
		return '♥'
	default:
		return '?'
	}
}

func obstacleGlyph(k ObstacleKind) (rune, core.Color) {
	switch k {
	case ObstacleTree:
		return '▲', core.ColorGreen
	case ObstacleBird:
		return 'v', core.ColorGray
	case ObstacleSnowman:
		return '☃', core.ColorWhite
	case ObstacleBuilding:
		return '█', core.ColorSlate
	case ObstacleCloud:
		return '☁', core.ColorGray
	case ObstacleIceSpike:
		return '◆', core.ColorIce
	case ObstacleBrokenGarland:
		return '≈', core.ColorMagenta
	default:
		return '?', core.ColorDefault
	}
}

func particleGlyph(p Particle) rune {
	switch p.Kind {
	case ParticleSparkle, ParticleGlow:
		return '*'
	case ParticleDebris:
		return ','
	case ParticleSmoke, ParticleDust:
		return '°'
	case ParticleShockwave:
		return 'O'
	case ParticleFire:
		return '^'
	case ParticleLife:
		return '♥'
	case ParticleTrail:
		return '·'
	default:
		return '.'
	}
}
