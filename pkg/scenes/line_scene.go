package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/pillars/internal/raster"
	"github.com/decker502/pillars/pkg/game"
	"github.com/decker502/pillars/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 直线演示的端点（归一化设备坐标）
const (
	lineStartX = -0.8
	lineStartY = -0.8
	lineEndX   = 0.8
	lineEndY   = 0.8
)

// lineDotColor 格点颜色（亮黄）
var lineDotColor = color.RGBA{R: 255, G: 220, B: 80, A: 255}

// LineScene Bresenham 直线演示：整数栅格化一条对角线并逐点绘制
type LineScene struct {
	sceneManager *game.SceneManager
	points       []raster.Point
}

// NewLineScene 创建直线演示场景
// 直线只在构造时栅格化一次，之后每帧重绘同一组点
func NewLineScene(sm *game.SceneManager) *LineScene {
	points, err := raster.Line(lineStartX, lineStartY, lineEndX, lineEndY, raster.DefaultScale)
	if err != nil {
		// 端点为编译期常量，栅格化不应失败
		log.Printf("[LineScene] 直线栅格化失败: %v", err)
	}
	return &LineScene{
		sceneManager: sm,
		points:       points,
	}
}

// Update 处理返回菜单输入
func (s *LineScene) Update(deltaTime float64) {
	if utils.IsMenuJustPressed() {
		s.sceneManager.LoadScene(game.SceneMenu)
	}
}

// Draw 逐点绘制栅格化后的直线
func (s *LineScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackgroundColor)

	for _, p := range s.points {
		sx, sy := ndcToScreen(p.X, p.Y)
		// 每个格点画一个 2×2 像素的方块
		vector.DrawFilledRect(screen, float32(sx)-1, float32(sy)-1, 2, 2, lineDotColor, false)
	}

	hud := fmt.Sprintf("Bresenham line (%.1f, %.1f) -> (%.1f, %.1f): %d points - ESC to menu",
		lineStartX, lineStartY, lineEndX, lineEndY, len(s.points))
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)
}
