// Package config 提供窗口常量与玩法数据的加载
package config

// 游戏逻辑屏幕尺寸（像素）
// 实际窗口可以缩放或全屏，Ebitengine 会按 Layout 返回的逻辑尺寸处理
const (
	GameWindowWidth  = 1000
	GameWindowHeight = 800
)

// 世界坐标系（正交投影盒）
// 建筑布局数据使用该坐标系：x ∈ [-6, 6]，y ∈ [-5, 5]，y 轴向上
const (
	WorldMinX = -6.0
	WorldMaxX = 6.0
	WorldMinY = -5.0
	WorldMaxY = 5.0
)

// MaxDeltaTime 单帧允许的最大逻辑时间（秒）
// 窗口拖动或断点调试会造成超长帧，夹紧后避免状态机一帧内跳变
const MaxDeltaTime = 0.25

// WorldToScreen 将世界坐标转换为屏幕像素坐标
// 世界 y 轴向上，屏幕 y 轴向下，转换时翻转
func WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = (wx - WorldMinX) / (WorldMaxX - WorldMinX) * GameWindowWidth
	sy = (WorldMaxY - wy) / (WorldMaxY - WorldMinY) * GameWindowHeight
	return sx, sy
}

// WorldScale 返回世界单位到屏幕像素的缩放比例（x 与 y 方向）
func WorldScale() (px, py float64) {
	px = GameWindowWidth / (WorldMaxX - WorldMinX)
	py = GameWindowHeight / (WorldMaxY - WorldMinY)
	return px, py
}
