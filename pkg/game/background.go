package game

import (
	"math"

	"github.com/decker502/pillars/pkg/config"
	"github.com/decker502/pillars/pkg/utils"
)

// BackgroundColor 根据一局游戏的当前状态计算背景颜色
//
// 进行中：平均完整度从满值降到阈值时，背景从白色渐变到红色。
// 失败：保持暗红；坍塌动画播放期间叠加红白闪烁。
// 获胜：绿色。
func BackgroundColor(r *Round, cfg *config.ClickerConfig) config.RGB {
	switch r.Phase() {
	case PhaseWon:
		return config.RGB{R: 0.2, G: 1.0, B: 0.2}

	case PhaseLost:
		if r.BoomRunning() {
			// 坍塌期间红白闪烁，每秒 5 次
			flash := math.Sin(r.BoomTimer()*2*math.Pi*5.0)*0.5 + 0.5
			return config.RGB{
				R: 0.5 + flash*0.5,
				G: 0.2 + flash*0.3,
				B: 0.2 + flash*0.3,
			}
		}
		return config.RGB{R: 1.0, G: 0.2, B: 0.2}
	}

	// 进行中：平均完整度 1.0 → 白色，降到阈值 → 红色
	ratio := utils.Clamp01((r.AverageGauge() - cfg.SurvivalThreshold) / (1.0 - cfg.SurvivalThreshold))
	return config.RGB{
		R: 1.0,
		G: utils.Lerp(0.0, 1.0, ratio),
		B: utils.Lerp(0.0, 1.0, ratio),
	}
}
