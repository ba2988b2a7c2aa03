package scenes

import (
	"image"
	"image/color"

	"github.com/decker502/pillars/pkg/config"
	"github.com/decker502/pillars/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 窗口逻辑尺寸（像素）
const (
	WindowWidth  = config.GameWindowWidth
	WindowHeight = config.GameWindowHeight
)

// 纯色几何绘制用的白色纹理源
// 使用 3×3 图的中心像素作为 SubImage，避免采样到纹理边缘
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawWorldRect 以世界坐标绘制一个带姿态变换的实心矩形
//
// (cx, cy) 为矩形中心，(w, h) 为世界单位尺寸，
// pose 提供坍塌动画的偏移、旋转与缩放，颜色分量为非预乘值。
func drawWorldRect(screen *ebiten.Image, cx, cy, w, h float64, pose game.Pose, r, g, b, a float32) {
	px, py := config.WorldScale()

	op := &ebiten.DrawImageOptions{}
	// 先把 1×1 像素缩放到目标尺寸并以中心为原点
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(w*px*pose.Scale, h*py*pose.Scale)
	// 世界坐标逆时针为正，屏幕 y 轴翻转后旋转方向取反
	op.GeoM.Rotate(-pose.Rotation)
	sx, sy := config.WorldToScreen(cx+pose.OffsetX, cy+pose.OffsetY)
	op.GeoM.Translate(sx, sy)
	// Ebitengine 的 ColorScale 使用预乘 alpha
	op.ColorScale.Scale(r*a, g*a, b*a, a)
	screen.DrawImage(whiteSubImage, op)
}

// ndcToScreen 将归一化设备坐标（x、y ∈ [-1, 1]，y 轴向上）转换为屏幕像素坐标
// 图形演示与直线演示场景使用该坐标系
func ndcToScreen(x, y float64) (sx, sy float64) {
	sx = (x + 1) / 2 * WindowWidth
	sy = (1 - y) / 2 * WindowHeight
	return sx, sy
}

// drawScreenTriangle 以屏幕像素坐标绘制实心三角形
func drawScreenTriangle(screen *ebiten.Image, sx0, sy0, sx1, sy1, sx2, sy2 float64, r, g, b, a float32) {
	pr, pg, pb := r*a, g*a, b*a
	vs := []ebiten.Vertex{
		{DstX: float32(sx0), DstY: float32(sy0), SrcX: 1, SrcY: 1, ColorR: pr, ColorG: pg, ColorB: pb, ColorA: a},
		{DstX: float32(sx1), DstY: float32(sy1), SrcX: 1, SrcY: 1, ColorR: pr, ColorG: pg, ColorB: pb, ColorA: a},
		{DstX: float32(sx2), DstY: float32(sy2), SrcX: 1, SrcY: 1, ColorR: pr, ColorG: pg, ColorB: pb, ColorA: a},
	}
	is := []uint16{0, 1, 2}
	screen.DrawTriangles(vs, is, whiteSubImage, nil)
}

// fillBackground 以指定颜色填充整个屏幕
func fillBackground(screen *ebiten.Image, rgb config.RGB) {
	screen.Fill(color.RGBA{
		R: uint8(rgb.R * 255),
		G: uint8(rgb.G * 255),
		B: uint8(rgb.B * 255),
		A: 255,
	})
}
