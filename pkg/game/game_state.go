package game

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景的全局状态数据
type GameState struct {
	SettingsManager *SettingsManager // 设置管理器
	RecordManager   *RecordManager   // 战绩管理器

	Verbose bool // 是否输出详细日志（命令行 --verbose）
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// ResetGameState 重置全局状态（仅用于测试）
func ResetGameState() {
	globalGameState = nil
}
