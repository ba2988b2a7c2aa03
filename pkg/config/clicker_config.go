package config

import (
	"fmt"

	"github.com/decker502/pillars/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ClickerConfig 点击保楼玩法参数
// 与 data/clicker.yaml 对应，缺失字段使用默认值
type ClickerConfig struct {
	FadeRate            float64 `yaml:"fadeRate"`            // 柱子完整度每秒衰减量
	GainPerPress        float64 `yaml:"gainPerPress"`        // 每次刷新输入恢复的完整度
	SurvivalThreshold   float64 `yaml:"survivalThreshold"`   // 存活阈值，任意柱子低于该值判负
	RoundDuration       float64 `yaml:"roundDuration"`       // 获胜所需坚持时长（秒）
	BoomDuration        float64 `yaml:"boomDuration"`        // 坍塌动画总时长（秒）
	PieceVanishDuration float64 `yaml:"pieceVanishDuration"` // 单个构件消失过渡时长（秒）
	PillarCount         int     `yaml:"pillarCount"`         // 柱子数量
}

// DefaultClickerConfig 返回默认玩法参数
// 数值与原版规则一致：0.2/s 衰减、0.25/次恢复、0.55 阈值、10 秒获胜
func DefaultClickerConfig() *ClickerConfig {
	return &ClickerConfig{
		FadeRate:            0.2,
		GainPerPress:        0.25,
		SurvivalThreshold:   0.55,
		RoundDuration:       10.0,
		BoomDuration:        2.5,
		PieceVanishDuration: 0.5,
		PillarCount:         4,
	}
}

// ParseClickerConfig 从 YAML 数据解析玩法参数
// 缺失字段应用默认值，随后验证取值范围
func ParseClickerConfig(data []byte) (*ClickerConfig, error) {
	cfg := &ClickerConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse clicker config YAML: %w", err)
	}

	applyClickerDefaults(cfg)

	if err := validateClickerConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid clicker config: %w", err)
	}

	return cfg, nil
}

// LoadClickerConfig 从嵌入资源加载玩法参数
//
// 参数：
//   - path: 资源路径，如 "data/clicker.yaml"
func LoadClickerConfig(path string) (*ClickerConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clicker config %s: %w", path, err)
	}

	cfg, err := ParseClickerConfig(data)
	if err != nil {
		return nil, fmt.Errorf("clicker config %s: %w", path, err)
	}

	return cfg, nil
}

// applyClickerDefaults 为缺失（零值）字段设置默认值，保持旧配置文件兼容
func applyClickerDefaults(cfg *ClickerConfig) {
	def := DefaultClickerConfig()

	if cfg.FadeRate == 0 {
		cfg.FadeRate = def.FadeRate
	}
	if cfg.GainPerPress == 0 {
		cfg.GainPerPress = def.GainPerPress
	}
	if cfg.SurvivalThreshold == 0 {
		cfg.SurvivalThreshold = def.SurvivalThreshold
	}
	if cfg.RoundDuration == 0 {
		cfg.RoundDuration = def.RoundDuration
	}
	if cfg.BoomDuration == 0 {
		cfg.BoomDuration = def.BoomDuration
	}
	if cfg.PieceVanishDuration == 0 {
		cfg.PieceVanishDuration = def.PieceVanishDuration
	}
	if cfg.PillarCount == 0 {
		cfg.PillarCount = def.PillarCount
	}
}

// validateClickerConfig 验证参数取值范围
func validateClickerConfig(cfg *ClickerConfig) error {
	if cfg.FadeRate < 0 {
		return fmt.Errorf("fadeRate must be >= 0, got %v", cfg.FadeRate)
	}
	if cfg.GainPerPress <= 0 || cfg.GainPerPress > 1 {
		return fmt.Errorf("gainPerPress must be in (0, 1], got %v", cfg.GainPerPress)
	}
	if cfg.SurvivalThreshold <= 0 || cfg.SurvivalThreshold >= 1 {
		return fmt.Errorf("survivalThreshold must be in (0, 1), got %v", cfg.SurvivalThreshold)
	}
	if cfg.RoundDuration <= 0 {
		return fmt.Errorf("roundDuration must be > 0, got %v", cfg.RoundDuration)
	}
	if cfg.BoomDuration <= 0 {
		return fmt.Errorf("boomDuration must be > 0, got %v", cfg.BoomDuration)
	}
	if cfg.PieceVanishDuration <= 0 {
		return fmt.Errorf("pieceVanishDuration must be > 0, got %v", cfg.PieceVanishDuration)
	}
	if cfg.PillarCount < 1 {
		return fmt.Errorf("pillarCount must be >= 1, got %d", cfg.PillarCount)
	}
	return nil
}
