package game

import (
	"testing"
)

// TestNewRecordManagerNilGdata 测试降级模式下从零开始记录
func TestNewRecordManagerNilGdata(t *testing.T) {
	rm, err := NewRecordManager(nil)
	if err != nil {
		t.Fatalf("NewRecordManager(nil) error: %v", err)
	}

	records := rm.GetRecords()
	if records == nil {
		t.Fatal("GetRecords() returned nil")
	}
	if records.TotalRounds != 0 || records.Wins != 0 || records.Losses != 0 {
		t.Errorf("初始战绩应全为零, 实际 %+v", records)
	}
}

// TestRecordWinLoss 测试胜负记录的累计
func TestRecordWinLoss(t *testing.T) {
	rm, _ := NewRecordManager(nil)

	rm.RecordWin(12)
	rm.RecordWin(8)
	rm.RecordLoss()

	records := rm.GetRecords()
	if records.TotalRounds != 3 {
		t.Errorf("TotalRounds = %d, 期望 3", records.TotalRounds)
	}
	if records.Wins != 2 {
		t.Errorf("Wins = %d, 期望 2", records.Wins)
	}
	if records.Losses != 1 {
		t.Errorf("Losses = %d, 期望 1", records.Losses)
	}
	if records.LastPlayedAt.IsZero() {
		t.Error("LastPlayedAt 应已更新")
	}
}

// TestRecordBestPresses 测试最佳刷新次数只在更优时更新
func TestRecordBestPresses(t *testing.T) {
	rm, _ := NewRecordManager(nil)

	rm.RecordWin(15)
	if rm.GetRecords().BestPresses != 15 {
		t.Errorf("首次获胜 BestPresses = %d, 期望 15", rm.GetRecords().BestPresses)
	}

	// 更差的成绩不更新
	rm.RecordWin(20)
	if rm.GetRecords().BestPresses != 15 {
		t.Errorf("更差成绩后 BestPresses = %d, 期望仍为 15", rm.GetRecords().BestPresses)
	}

	// 更好的成绩更新
	rm.RecordWin(9)
	if rm.GetRecords().BestPresses != 9 {
		t.Errorf("更好成绩后 BestPresses = %d, 期望 9", rm.GetRecords().BestPresses)
	}

	// 失败不影响最佳记录
	rm.RecordLoss()
	if rm.GetRecords().BestPresses != 9 {
		t.Errorf("失败后 BestPresses = %d, 期望仍为 9", rm.GetRecords().BestPresses)
	}
}

// TestRecordsPersistence 测试战绩的保存与重新加载
func TestRecordsPersistence(t *testing.T) {
	gdataManager := newTestGdataManager(t, "test_records")

	rm1, err := NewRecordManager(gdataManager)
	if err != nil {
		t.Fatalf("NewRecordManager() error: %v", err)
	}

	rm1.RecordWin(11)
	rm1.RecordLoss()

	// 创建新的管理器，验证加载
	rm2, err := NewRecordManager(gdataManager)
	if err != nil {
		t.Fatalf("NewRecordManager() error on reload: %v", err)
	}

	records := rm2.GetRecords()
	if records.TotalRounds != 2 {
		t.Errorf("Loaded TotalRounds = %d, 期望 2", records.TotalRounds)
	}
	if records.Wins != 1 {
		t.Errorf("Loaded Wins = %d, 期望 1", records.Wins)
	}
	if records.Losses != 1 {
		t.Errorf("Loaded Losses = %d, 期望 1", records.Losses)
	}
	if records.BestPresses != 11 {
		t.Errorf("Loaded BestPresses = %d, 期望 11", records.BestPresses)
	}
}

// TestRecordSaveNilGdata 测试降级模式下 Save() 不报错
func TestRecordSaveNilGdata(t *testing.T) {
	rm, _ := NewRecordManager(nil)

	if err := rm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}
