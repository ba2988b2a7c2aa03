package scenes

import (
	"github.com/decker502/pillars/pkg/config"
	"github.com/decker502/pillars/pkg/game"
	"github.com/decker502/pillars/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// shapesTriangle 归一化设备坐标下的一个实心三角形
type shapesTriangle struct {
	x0, y0, x1, y1, x2, y2 float64
}

// ShapesScene 静态图形演示：白底上的橙色"房子"
// 由正方形（两个三角形）加顶部三角形屋顶组成
type ShapesScene struct {
	sceneManager *game.SceneManager
	triangles    []shapesTriangle
}

// NewShapesScene 创建静态图形演示场景
func NewShapesScene(sm *game.SceneManager) *ShapesScene {
	return &ShapesScene{
		sceneManager: sm,
		triangles: []shapesTriangle{
			// 正方形下三角
			{-0.5, -0.5, 0.5, -0.5, 0.5, 0.5},
			// 正方形上三角
			{-0.5, -0.5, 0.5, 0.5, -0.5, 0.5},
			// 屋顶：与正方形共享上边两个顶点
			{-0.5, 0.5, 0.5, 0.5, 0.0, 0.9},
		},
	}
}

// Update 处理返回菜单输入
func (s *ShapesScene) Update(deltaTime float64) {
	if utils.IsMenuJustPressed() {
		s.sceneManager.LoadScene(game.SceneMenu)
	}
}

// Draw 绘制静态图形
func (s *ShapesScene) Draw(screen *ebiten.Image) {
	fillBackground(screen, config.RGB{R: 1, G: 1, B: 1})

	for _, tri := range s.triangles {
		sx0, sy0 := ndcToScreen(tri.x0, tri.y0)
		sx1, sy1 := ndcToScreen(tri.x1, tri.y1)
		sx2, sy2 := ndcToScreen(tri.x2, tri.y2)
		drawScreenTriangle(screen, sx0, sy0, sx1, sy1, sx2, sy2, 1.0, 0.5, 0.2, 1.0)
	}

	ebitenutil.DebugPrintAt(screen, "Static shapes demo - ESC to menu", 10, 10)
}
