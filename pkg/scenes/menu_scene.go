package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/pillars/pkg/game"
	"github.com/decker502/pillars/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// menuItem 菜单项：显示文字与目标场景
type menuItem struct {
	label   string
	sceneID string
}

// 菜单布局（像素）
const (
	menuItemX      = 80.0
	menuItemY      = 200.0
	menuItemWidth  = 420.0
	menuItemHeight = 56.0
	menuItemGap    = 24.0

	// 高亮条淡入时长（秒）
	menuHighlightDuration = 0.2
)

// menuBackgroundColor 菜单背景色（深蓝灰）
var menuBackgroundColor = color.RGBA{R: 24, G: 28, B: 38, A: 255}

// menuHighlightColor 返回指定不透明度的高亮条颜色
// color.RGBA 为预乘 alpha 格式，分量随 alpha 缩放
func menuHighlightColor(alpha float32) color.Color {
	return color.RGBA{
		R: uint8(70 * alpha),
		G: uint8(90 * alpha),
		B: uint8(140 * alpha),
		A: uint8(255 * alpha),
	}
}

// MenuScene 主菜单：选择要进入的演示场景
type MenuScene struct {
	sceneManager *game.SceneManager

	items     []menuItem
	hovered   int       // 当前悬停的菜单项，-1 表示无
	highlight []float64 // 各菜单项高亮动画进度 [0, 1]
	elapsed   float64
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(sm *game.SceneManager) *MenuScene {
	items := []menuItem{
		{label: "1. Static Shapes", sceneID: game.SceneShapes},
		{label: "2. Bresenham Line", sceneID: game.SceneLine},
		{label: "3. Save the Building!", sceneID: game.SceneClicker},
	}
	return &MenuScene{
		sceneManager: sm,
		items:        items,
		hovered:      -1,
		highlight:    make([]float64, len(items)),
	}
}

// itemRect 返回第 i 个菜单项的屏幕矩形
func (s *MenuScene) itemRect(i int) (x, y, w, h float64) {
	y = menuItemY + float64(i)*(menuItemHeight+menuItemGap)
	return menuItemX, y, menuItemWidth, menuItemHeight
}

// Update 处理菜单输入与高亮动画
func (s *MenuScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	// 数字键直接选择
	if d, ok := utils.JustPressedDigit(); ok && d <= len(s.items) {
		s.sceneManager.LoadScene(s.items[d-1].sceneID)
		return
	}

	// 悬停检测
	mx, my := ebiten.CursorPosition()
	s.hovered = -1
	for i := range s.items {
		x, y, w, h := s.itemRect(i)
		if float64(mx) >= x && float64(mx) <= x+w && float64(my) >= y && float64(my) <= y+h {
			s.hovered = i
			break
		}
	}

	// 高亮动画：悬停项淡入，其余淡出
	for i := range s.highlight {
		if i == s.hovered {
			s.highlight[i] += deltaTime / menuHighlightDuration
		} else {
			s.highlight[i] -= deltaTime / menuHighlightDuration
		}
		s.highlight[i] = utils.Clamp01(s.highlight[i])
	}

	// 点击选择
	if clicked, cx, cy := utils.IsJustTouchedOrClicked(); clicked {
		for i := range s.items {
			x, y, w, h := s.itemRect(i)
			if float64(cx) >= x && float64(cx) <= x+w && float64(cy) >= y && float64(cy) <= y+h {
				s.sceneManager.LoadScene(s.items[i].sceneID)
				return
			}
		}
	}
}

// Draw 绘制主菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackgroundColor)

	ebitenutil.DebugPrintAt(screen, "PILLARS", menuItemX, 120)
	ebitenutil.DebugPrintAt(screen, "Press 1-3 or click to choose a demo", menuItemX, 150)

	for i, item := range s.items {
		x, y, w, h := s.itemRect(i)

		// 高亮条：缓出淡入
		alpha := float32(utils.EaseOutCubic(s.highlight[i]))
		if alpha > 0 {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h),
				menuHighlightColor(alpha), true)
		}

		ebitenutil.DebugPrintAt(screen, item.label, int(x)+16, int(y)+int(menuItemHeight/2)-8)
	}

	s.drawRecords(screen)
}

// drawRecords 在菜单底部显示历史战绩
func (s *MenuScene) drawRecords(screen *ebiten.Image) {
	rm := game.GetGameState().RecordManager
	if rm == nil {
		return
	}

	records := rm.GetRecords()
	if records.TotalRounds == 0 {
		return
	}

	line := fmt.Sprintf("Rounds: %d   Wins: %d   Losses: %d",
		records.TotalRounds, records.Wins, records.Losses)
	ebitenutil.DebugPrintAt(screen, line, menuItemX, WindowHeight-80)

	if records.BestPresses > 0 {
		best := fmt.Sprintf("Best win: %d presses", records.BestPresses)
		ebitenutil.DebugPrintAt(screen, best, menuItemX, WindowHeight-60)
	}
}
