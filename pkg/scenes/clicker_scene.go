package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/pillars/pkg/config"
	"github.com/decker502/pillars/pkg/game"
	"github.com/decker502/pillars/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ClickerScene 点击保楼玩法场景
//
// 楼房由一组矩形构件组成，其中四根柱子的不透明度随时间衰减。
// 玩家反复按下刷新键为柱子恢复不透明度，任意柱子低于阈值则
// 楼房坍塌，坚持到时限则获胜。
type ClickerScene struct {
	sceneManager *game.SceneManager
	cfg          *config.ClickerConfig
	layout       *config.BuildingLayout

	round     *game.Round
	gone      []bool // 各构件是否已在坍塌动画中消失
	lastPhase game.Phase

	showHUD bool
}

// NewClickerScene 创建点击保楼场景
// cfg 与 layout 在启动时加载并验证过，这里直接使用
func NewClickerScene(sm *game.SceneManager, cfg *config.ClickerConfig, layout *config.BuildingLayout) *ClickerScene {
	showHUD := true
	if settings := game.GetGameState().SettingsManager; settings != nil {
		showHUD = settings.GetSettings().ShowHUD
	}

	return &ClickerScene{
		sceneManager: sm,
		cfg:          cfg,
		layout:       layout,
		round:        game.NewRound(cfg),
		gone:         make([]bool, len(layout.Pieces)),
		lastPhase:    game.PhaseActive,
		showHUD:      showHUD,
	}
}

// Update 推进一帧游戏逻辑
func (s *ClickerScene) Update(deltaTime float64) {
	if utils.IsMenuJustPressed() {
		s.sceneManager.LoadScene(game.SceneMenu)
		return
	}

	s.round.Update(deltaTime, utils.IsRefreshDown(), utils.IsResetDown())

	s.handlePhaseTransition()

	// 坍塌动画期间更新构件消失标记
	if s.round.BoomRunning() {
		for i, piece := range s.layout.Pieces {
			if s.gone[i] {
				continue
			}
			if _, gone := game.PiecePose(piece.DisappearAt, s.cfg.PieceVanishDuration, s.round.BoomTimer(), false); gone {
				s.gone[i] = true
			}
		}
	}
}

// handlePhaseTransition 检测阶段切换，记录战绩并在重开时复原构件
func (s *ClickerScene) handlePhaseTransition() {
	phase := s.round.Phase()
	if phase == s.lastPhase {
		return
	}

	rm := game.GetGameState().RecordManager
	switch phase {
	case game.PhaseWon:
		if rm != nil {
			rm.RecordWin(s.round.Presses())
		}
	case game.PhaseLost:
		if rm != nil {
			rm.RecordLoss()
		}
	case game.PhaseActive:
		// 重开一局，构件全部复原
		for i := range s.gone {
			s.gone[i] = false
		}
	}
	s.lastPhase = phase
}

// Draw 绘制背景、楼房与状态文字
func (s *ClickerScene) Draw(screen *ebiten.Image) {
	fillBackground(screen, game.BackgroundColor(s.round, s.cfg))

	boom := s.round.Phase() == game.PhaseLost

	for i, piece := range s.layout.Pieces {
		pose := game.RestPose()
		if boom {
			var gone bool
			pose, gone = game.PiecePose(piece.DisappearAt, s.cfg.PieceVanishDuration, s.round.BoomTimer(), s.gone[i])
			if gone {
				continue
			}
		}

		// 柱子不透明度跟随完整度，其余构件保持不透明
		alpha := 1.0
		if piece.IsPillar() {
			alpha = s.round.GaugeValue(piece.PillarIndex())
		}

		drawWorldRect(screen, piece.X, piece.Y, piece.Width, piece.Height, pose,
			float32(piece.Color.R), float32(piece.Color.G), float32(piece.Color.B), float32(alpha))
	}

	if s.showHUD {
		s.drawHUD(screen)
	}
}

// drawHUD 绘制计时、刷新次数与各柱子完整度
func (s *ClickerScene) drawHUD(screen *ebiten.Image) {
	var status string
	switch s.round.Phase() {
	case game.PhaseActive:
		status = fmt.Sprintf("Keep pressing SPACE!  %.1fs to survive", s.round.Remaining())
	case game.PhaseWon:
		status = "YOU SAVED THE BUILDING! Press R to play again"
	case game.PhaseLost:
		if s.round.BoomRunning() {
			status = "BOOM!"
		} else {
			status = "The building collapsed... Press R to try again"
		}
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)

	gauges := ""
	for i := 0; i < s.round.GaugeCount(); i++ {
		gauges += fmt.Sprintf("P%d: %3.0f%%  ", i+1, s.round.GaugeValue(i)*100)
	}
	ebitenutil.DebugPrintAt(screen, gauges, 10, 30)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Presses: %d   ESC: menu", s.round.Presses()), 10, 50)
}

// SaveOnExit 退出时保存战绩
// 战绩在每局结束时已即时保存，这里只处理 gdata 的兜底写入
func (s *ClickerScene) SaveOnExit() bool {
	rm := game.GetGameState().RecordManager
	if rm == nil {
		return true
	}
	if err := rm.Save(); err != nil {
		log.Printf("[ClickerScene] 退出保存战绩失败: %v", err)
		return false
	}
	return true
}
