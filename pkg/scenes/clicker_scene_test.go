package scenes

import (
	"testing"

	"github.com/decker502/pillars/pkg/config"
	"github.com/decker502/pillars/pkg/game"
)

// newTestClickerScene 构造测试用场景，不经过 embedded 资源加载
func newTestClickerScene(t *testing.T) *ClickerScene {
	t.Helper()

	cfg := config.DefaultClickerConfig()
	layout := &config.BuildingLayout{Pieces: []config.BuildingPiece{
		{X: -0.5, Y: -0.3, Width: 0.08, Height: 0.5, Pillar: 1, DisappearAt: 0.0},
		{X: -0.2, Y: -0.3, Width: 0.08, Height: 0.5, Pillar: 2, DisappearAt: 0.2},
		{X: 0.2, Y: -0.3, Width: 0.08, Height: 0.5, Pillar: 3, DisappearAt: 0.4},
		{X: 0.5, Y: -0.3, Width: 0.08, Height: 0.5, Pillar: 4, DisappearAt: 0.6},
		{X: 0.0, Y: 0.0, Width: 1.2, Height: 0.1, DisappearAt: 1.0},
	}}
	if err := layout.Validate(cfg); err != nil {
		t.Fatalf("测试布局验证失败: %v", err)
	}

	return &ClickerScene{
		sceneManager: game.NewSceneManager(),
		cfg:          cfg,
		layout:       layout,
		round:        game.NewRound(cfg),
		gone:         make([]bool, len(layout.Pieces)),
		lastPhase:    game.PhaseActive,
	}
}

// driveToLoss 推进回合直到判负
func driveToLoss(s *ClickerScene) {
	for i := 0; i < 30 && s.round.Phase() != game.PhaseLost; i++ {
		s.round.Update(0.1, false, false)
	}
}

// TestClickerPhaseTransitionRecordsLoss 判负时战绩记录一次失败
func TestClickerPhaseTransitionRecordsLoss(t *testing.T) {
	game.ResetGameState()
	t.Cleanup(game.ResetGameState)
	game.GetGameState().RecordManager, _ = game.NewRecordManager(nil)

	s := newTestClickerScene(t)
	driveToLoss(s)
	s.handlePhaseTransition()

	records := game.GetGameState().RecordManager.GetRecords()
	if records.Losses != 1 || records.TotalRounds != 1 {
		t.Errorf("判负后战绩 = %+v, 期望 1 局 1 负", records)
	}

	// 阶段未变化时不应重复记录
	s.handlePhaseTransition()
	if game.GetGameState().RecordManager.GetRecords().Losses != 1 {
		t.Error("同一阶段重复处理不应再次记录失败")
	}
}

// TestClickerPhaseTransitionRecordsWin 获胜时记录刷新次数
func TestClickerPhaseTransitionRecordsWin(t *testing.T) {
	game.ResetGameState()
	t.Cleanup(game.ResetGameState)
	game.GetGameState().RecordManager, _ = game.NewRecordManager(nil)

	s := newTestClickerScene(t)
	down := true
	for i := 0; i < 20; i++ {
		s.round.Update(0.5, down, false)
		down = !down
	}
	if s.round.Phase() != game.PhaseWon {
		t.Fatalf("Phase = %v, 期望 Won", s.round.Phase())
	}
	s.handlePhaseTransition()

	records := game.GetGameState().RecordManager.GetRecords()
	if records.Wins != 1 {
		t.Errorf("获胜后 Wins = %d, 期望 1", records.Wins)
	}
	if records.BestPresses != s.round.Presses() {
		t.Errorf("BestPresses = %d, 期望 %d", records.BestPresses, s.round.Presses())
	}
}

// TestClickerGoneFlagsResetOnRestart 重开一局后构件消失标记复原
func TestClickerGoneFlagsResetOnRestart(t *testing.T) {
	game.ResetGameState()
	t.Cleanup(game.ResetGameState)
	game.GetGameState().RecordManager, _ = game.NewRecordManager(nil)

	s := newTestClickerScene(t)
	driveToLoss(s)
	s.handlePhaseTransition()

	// 播放完整坍塌动画并更新消失标记
	for i := 0; i < 30; i++ {
		s.round.Update(0.1, false, false)
		if s.round.BoomRunning() {
			for j, piece := range s.layout.Pieces {
				if s.gone[j] {
					continue
				}
				if _, gone := game.PiecePose(piece.DisappearAt, s.cfg.PieceVanishDuration, s.round.BoomTimer(), false); gone {
					s.gone[j] = true
				}
			}
		}
	}

	anyGone := false
	for _, g := range s.gone {
		anyGone = anyGone || g
	}
	if !anyGone {
		t.Fatal("坍塌动画结束后应有构件消失")
	}

	// 重开一局
	s.round.Update(0.1, false, true)
	s.handlePhaseTransition()

	for i, g := range s.gone {
		if g {
			t.Errorf("重开后构件 %d 仍标记为消失", i)
		}
	}
	if s.lastPhase != game.PhaseActive {
		t.Errorf("重开后 lastPhase = %v, 期望 Active", s.lastPhase)
	}
}
