package game

// Gauge 单根柱子的完整度，取值范围 [0, 1]
// 完整度同时用作柱子渲染的不透明度
type Gauge struct {
	Value float64
}

// NewGauge 创建满完整度的柱子
func NewGauge() Gauge {
	return Gauge{Value: 1.0}
}

// Decay 按衰减速率扣减完整度，下限 0
//
// 参数：
//   - rate: 每秒衰减量
//   - dt: 本帧时长（秒）
func (g *Gauge) Decay(rate, dt float64) {
	g.Value -= rate * dt
	if g.Value < 0 {
		g.Value = 0
	}
}

// Boost 恢复完整度，上限 1
func (g *Gauge) Boost(amount float64) {
	g.Value += amount
	if g.Value > 1 {
		g.Value = 1
	}
}
