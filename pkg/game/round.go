package game

import (
	"log"

	"github.com/decker502/pillars/pkg/config"
)

// Phase 一局游戏的阶段
type Phase int

const (
	// PhaseActive 进行中：柱子衰减，接受刷新输入
	PhaseActive Phase = iota
	// PhaseWon 获胜：坚持到了时限
	PhaseWon
	// PhaseLost 失败：某根柱子低于阈值，触发坍塌动画
	PhaseLost
)

// String 返回阶段的可读名称
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "Active"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	}
	return "Unknown"
}

// Round 一局点击保楼游戏的完整状态
//
// 输入采用电平信号：每帧传入"当前是否按下"，
// Round 内部维护上一帧状态做边沿检测，
// 按住不放只算一次刷新。
type Round struct {
	cfg *config.ClickerConfig

	phase   Phase
	gauges  []Gauge
	elapsed float64 // 本局已坚持时长（秒）
	presses int     // 本局刷新次数

	boomTimer float64 // 坍塌动画已播放时长（秒），仅在 PhaseLost 推进
	boomDone  bool    // 坍塌动画是否已播放完毕

	// 上一帧输入电平，用于边沿检测
	prevRefresh bool
	prevReset   bool
}

// NewRound 创建一局新游戏，所有柱子满完整度
func NewRound(cfg *config.ClickerConfig) *Round {
	r := &Round{cfg: cfg}
	r.Reset()
	return r
}

// Reset 重新开始一局：柱子回满，计时清零，坍塌动画停止
// 输入边沿状态保留，避免触发重开的那次按键又被算作刷新
func (r *Round) Reset() {
	r.phase = PhaseActive
	r.gauges = make([]Gauge, r.cfg.PillarCount)
	for i := range r.gauges {
		r.gauges[i] = NewGauge()
	}
	r.elapsed = 0
	r.presses = 0
	r.boomTimer = 0
	r.boomDone = false
}

// Update 推进一局游戏一帧
//
// 参数：
//   - dt: 本帧时长（秒），可为 0
//   - refreshDown: 刷新输入当前是否按下（电平）
//   - resetDown: 重开输入当前是否按下（电平）
//
// 更新顺序：重开检测 → 坍塌动画推进 → 衰减 → 刷新恢复 →
// 阈值判负 → 时限判胜。恢复在判负之前，同一帧的按键可以救场。
func (r *Round) Update(dt float64, refreshDown, resetDown bool) {
	refreshEdge := refreshDown && !r.prevRefresh
	resetEdge := resetDown && !r.prevReset
	r.prevRefresh = refreshDown
	r.prevReset = resetDown

	if resetEdge {
		log.Printf("[Round] 重新开始")
		r.Reset()
		return
	}

	switch r.phase {
	case PhaseWon:
		// 终局状态，等待重开
		return

	case PhaseLost:
		if !r.boomDone {
			r.boomTimer += dt
			if r.boomTimer >= r.cfg.BoomDuration {
				r.boomTimer = r.cfg.BoomDuration
				r.boomDone = true
				log.Printf("[Round] 坍塌动画结束")
			}
		}
		return
	}

	// PhaseActive
	r.elapsed += dt

	for i := range r.gauges {
		r.gauges[i].Decay(r.cfg.FadeRate, dt)
	}

	if refreshEdge {
		for i := range r.gauges {
			r.gauges[i].Boost(r.cfg.GainPerPress)
		}
		r.presses++
	}

	for i := range r.gauges {
		if r.gauges[i].Value < r.cfg.SurvivalThreshold {
			r.phase = PhaseLost
			r.boomTimer = 0
			r.boomDone = false
			log.Printf("[Round] 失败: 柱子 %d 完整度 %.3f 低于阈值 %.2f (坚持 %.1f 秒, %d 次刷新)",
				i+1, r.gauges[i].Value, r.cfg.SurvivalThreshold, r.elapsed, r.presses)
			return
		}
	}

	if r.elapsed >= r.cfg.RoundDuration {
		r.phase = PhaseWon
		log.Printf("[Round] 获胜! 坚持 %.1f 秒, %d 次刷新", r.elapsed, r.presses)
	}
}

// Phase 返回当前阶段
func (r *Round) Phase() Phase {
	return r.phase
}

// GaugeValue 返回第 i 根柱子（0 基）的完整度
func (r *Round) GaugeValue(i int) float64 {
	return r.gauges[i].Value
}

// GaugeCount 返回柱子数量
func (r *Round) GaugeCount() int {
	return len(r.gauges)
}

// AverageGauge 返回所有柱子的平均完整度
func (r *Round) AverageGauge() float64 {
	sum := 0.0
	for i := range r.gauges {
		sum += r.gauges[i].Value
	}
	return sum / float64(len(r.gauges))
}

// Elapsed 返回本局已坚持时长（秒）
func (r *Round) Elapsed() float64 {
	return r.elapsed
}

// Remaining 返回距获胜还需坚持的时长（秒），不小于 0
func (r *Round) Remaining() float64 {
	remaining := r.cfg.RoundDuration - r.elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Presses 返回本局刷新次数
func (r *Round) Presses() int {
	return r.presses
}

// BoomTimer 返回坍塌动画已播放时长（秒）
func (r *Round) BoomTimer() float64 {
	return r.boomTimer
}

// BoomRunning 返回坍塌动画是否正在播放
func (r *Round) BoomRunning() bool {
	return r.phase == PhaseLost && !r.boomDone
}
