package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlayRecords 点击保楼玩法的历史战绩
type PlayRecords struct {
	TotalRounds  int       `yaml:"totalRounds"`  // 已完成的局数（胜 + 负）
	Wins         int       `yaml:"wins"`         // 获胜局数
	Losses       int       `yaml:"losses"`       // 失败局数
	BestPresses  int       `yaml:"bestPresses"`  // 获胜局中最少的刷新次数，0 表示尚无获胜记录
	LastPlayedAt time.Time `yaml:"lastPlayedAt"` // 最近一局结束时间
}

// RecordManager 战绩管理器
// 与 SettingsManager 使用同一个 gdata 存储，对象路径独立
type RecordManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存记录）
	records      *PlayRecords
}

const (
	recordsObject   = "records"
	recordsProperty = "global"
)

// NewRecordManager 创建新的战绩管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewRecordManager(gdataManager *gdata.Manager) (*RecordManager, error) {
	rm := &RecordManager{
		gdataManager: gdataManager,
		records:      &PlayRecords{},
	}

	if err := rm.Load(); err != nil {
		// 加载失败不是致命错误，从零开始记录
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm, nil
}

// Load 从 gdata 加载战绩
// 如果 gdataManager 为 nil 或文件不存在，从零开始
func (rm *RecordManager) Load() error {
	if rm.gdataManager == nil {
		rm.records = &PlayRecords{}
		return nil
	}

	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		rm.records = &PlayRecords{}
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		rm.records = &PlayRecords{}
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded PlayRecords
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		rm.records = &PlayRecords{}
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = &loaded
	log.Printf("[RecordManager] Records loaded: %d rounds (%d wins)", loaded.TotalRounds, loaded.Wins)
	return nil
}

// Save 保存战绩到 gdata
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	return nil
}

// RecordWin 记录一次获胜
//
// 参数：
//   - presses: 本局的刷新按键次数，用于更新最佳记录
func (rm *RecordManager) RecordWin(presses int) {
	rm.records.TotalRounds++
	rm.records.Wins++
	rm.records.LastPlayedAt = time.Now()

	if presses > 0 && (rm.records.BestPresses == 0 || presses < rm.records.BestPresses) {
		rm.records.BestPresses = presses
		log.Printf("[RecordManager] 新的最佳记录: %d 次刷新", presses)
	}

	if err := rm.Save(); err != nil {
		log.Printf("[RecordManager] Warning: Failed to save records: %v", err)
	}
}

// RecordLoss 记录一次失败
func (rm *RecordManager) RecordLoss() {
	rm.records.TotalRounds++
	rm.records.Losses++
	rm.records.LastPlayedAt = time.Now()

	if err := rm.Save(); err != nil {
		log.Printf("[RecordManager] Warning: Failed to save records: %v", err)
	}
}

// GetRecords 获取当前战绩
func (rm *RecordManager) GetRecords() *PlayRecords {
	return rm.records
}
