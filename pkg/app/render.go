package app

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/game"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 16, B: 22, A: 255}
	highlightColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	aimColor        = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	kindColors      = map[types.EntityKind]color.RGBA{
		types.EntityPlayer: {R: 90, G: 160, B: 255, A: 255},
		types.EntityRat:    {R: 140, G: 110, B: 90, A: 255},
		types.EntityBoss:   {R: 170, G: 30, B: 40, A: 255},
		types.EntityBullet: {R: 255, G: 220, B: 80, A: 255},
		types.EntityItem:   {R: 80, G: 200, B: 120, A: 255},
		types.EntityDoor:   {R: 120, G: 90, B: 60, A: 255},
		types.EntitySwitch: {R: 200, G: 200, B: 60, A: 255},
		types.EntityExit:   {R: 220, G: 220, B: 220, A: 255},
	}
)

// Draw 绘制当前画面
// 实体以碰撞盒的形式绘制，暂时没有美术资源
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.levels.State() == game.StateMenu {
		ebitenutil.DebugPrintAt(screen, "LAST 12 HOURS\n\nEnter: new game\nC: continue", ScreenWidth/2-60, ScreenHeight/2-30)
		return
	}

	em := g.world.EM
	for _, e := range g.world.Entities() {
		if e.Disposed() {
			continue
		}
		g.drawEntity(screen, em, e)
	}

	g.drawHUD(screen)
}

func (g *Game) drawEntity(screen *ebiten.Image, em *ecs.EntityManager, e *entities.Entity) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, e.ID)
	if !ok {
		return
	}
	minX, minY, maxX, maxY := col.Bounds(e.Position())
	x, y := float32(minX*pixelsPerUnit), float32(minY*pixelsPerUnit)
	w, h := float32((maxX-minX)*pixelsPerUnit), float32((maxY-minY)*pixelsPerUnit)

	clr := kindColors[e.Kind]
	if ic, ok := ecs.GetComponent[*components.InteractableComponent](em, e.ID); ok {
		// 开关打开、门未锁定时变暗
		if ic.Kind == components.InteractBool && ic.IsInteracting {
			clr.A = 120
		}
		if col.Solid {
			vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		} else {
			vector.StrokeRect(screen, x, y, w, h, 2, clr, false)
		}
		if ic.Highlighted {
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 1, highlightColor, false)
		}
	} else {
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}

	if aim, ok := ecs.GetComponent[*components.AimComponent](em, e.ID); ok && aim.HandVisible {
		cx, cy := x+w/2, y+h/2
		rad := aim.Angle * math.Pi / 180
		length := float32(pixelsPerUnit * 1.5)
		vector.StrokeLine(screen, cx, cy, cx+length*float32(math.Cos(rad)), cy+length*float32(math.Sin(rad)), 3, aimColor, true)
	}

	if g.opts.Debug && e.Health != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", e.Health.Health()), int(x), int(y)-14)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	player := g.world.Player

	var inv []string
	for _, item := range player.Inventory.Items() {
		inv = append(inv, fmt.Sprintf("%s x%d", item.Type, item.Amount))
	}
	status := fmt.Sprintf("Level %d  HP %d/%d\n%s", player.Level(), g.hud.Health(), player.Health.MaxHealth, strings.Join(inv, ", "))
	if weapon, _, _, ok := player.Weapon(); ok {
		status += fmt.Sprintf("\nWeapon: %s", weapon)
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)

	for i, msg := range g.hud.Messages() {
		ebitenutil.DebugPrintAt(screen, msg, 10, ScreenHeight-20-16*(len(g.hud.Messages())-1-i))
	}

	if g.levels.State() == game.StateGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR: retry  Enter: new game", ScreenWidth/2-70, ScreenHeight/2-10)
	}

	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f  entities: %d", ebiten.ActualTPS(), g.world.EM.EntityCount()), ScreenWidth-220, 10)
	}
}
