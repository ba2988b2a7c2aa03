// Package raster 提供纯算法的直线光栅化（Bresenham 中点画线）
//
// 该包不依赖任何渲染库：输入为连续坐标系中的一条线段，输出为
// 按顺序排列、逼近该线段的采样点序列。
//
// 为避免浮点误差累积，算法不直接在连续坐标上运行，而是先把端点
// 放大 scale 倍并取整，映射到一个整数格点（lattice）上，在格点上
// 做纯整数运算，输出时再除回 scale 还原为连续坐标。scale 决定了
// 线段的采样分辨率，与窗口尺寸无关。
package raster

import (
	"errors"
	"fmt"
	"math"
)

// DefaultScale 演示场景使用的默认格点缩放因子
// 放大 1000 倍可以在 [-1, 1] 的归一化坐标系里获得足够平滑的采样
const DefaultScale = 1000

var (
	// ErrNonFinite 表示端点坐标包含 NaN 或 ±Inf
	// 非有限坐标无法映射到整数格点，必须立即拒绝而不是陷入死循环
	ErrNonFinite = errors.New("raster: non-finite coordinate")

	// ErrInvalidScale 表示格点缩放因子小于 1
	ErrInvalidScale = errors.New("raster: scale must be >= 1")
)

// Point 一个光栅化采样点（连续坐标系）
type Point struct {
	X float64
	Y float64
}

// Line 使用 Bresenham 算法光栅化从 (x0, y0) 到 (x1, y1) 的线段
//
// 输出保证：
//   - 序列以 p0 开始、以 p1 结束，两端点各出现且仅出现一次
//   - 相邻两点在格点上每个轴的差值不超过 1（无空洞）
//   - 无重复点
//   - 零长度线段（两端点映射到同一格点）输出恰好一个点
//
// 每次调用返回新分配的切片，调用方可安全持有。
//
// 参数：
//   - x0, y0, x1, y1: 连续坐标系中的端点
//   - scale: 格点缩放因子（>= 1），决定采样分辨率
//
// 返回：
//   - []Point: 有序采样点序列（连续坐标）
//   - error: 输入非法时返回 ErrNonFinite 或 ErrInvalidScale
func Line(x0, y0, x1, y1 float64, scale int) ([]Point, error) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: (%v, %v) -> (%v, %v)", ErrNonFinite, x0, y0, x1, y1)
		}
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}

	s := float64(scale)

	// 映射到整数格点
	lx0 := int(math.Round(x0 * s))
	ly0 := int(math.Round(y0 * s))
	lx1 := int(math.Round(x1 * s))
	ly1 := int(math.Round(y1 * s))

	dx := abs(lx1 - lx0)
	dy := abs(ly1 - ly0)

	// 各轴步进方向（处理全部八分象限）
	sx := 1
	if lx0 > lx1 {
		sx = -1
	}
	sy := 1
	if ly0 > ly1 {
		sy = -1
	}

	// 误差累积项：e 记录理想直线与当前格点的偏差
	e := dx - dy

	// 点数恰好为 max(dx, dy)+1，一次性分配避免扩容
	pts := make([]Point, 0, max(dx, dy)+1)

	x, y := lx0, ly0
	for {
		pts = append(pts, Point{X: float64(x) / s, Y: float64(y) / s})
		if x == lx1 && y == ly1 {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}

	return pts, nil
}

// abs 整数绝对值
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
