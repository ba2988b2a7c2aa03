package config

import (
	"fmt"

	"github.com/decker502/pillars/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// RGB 颜色，分量范围 [0, 1]
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// BuildingPiece 单个建筑构件的静态描述
// 启动时创建一次，运行期只读；(X, Y) 为构件中心的世界坐标
type BuildingPiece struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Color       RGB     `yaml:"color"`
	DisappearAt float64 `yaml:"disappearAt"` // 坍塌动画中该构件开始消失的时刻（秒）
	Pillar      int     `yaml:"pillar"`      // 1 基柱子编号，0 表示普通构件
}

// IsPillar 该构件是否为柱子
func (p *BuildingPiece) IsPillar() bool {
	return p.Pillar > 0
}

// PillarIndex 返回 0 基柱子下标；普通构件返回 -1
func (p *BuildingPiece) PillarIndex() int {
	return p.Pillar - 1
}

// BuildingLayout 建筑布局：按绘制顺序排列的构件列表
type BuildingLayout struct {
	Pieces []BuildingPiece `yaml:"pieces"`
}

// ParseBuildingLayout 从 YAML 数据解析建筑布局并做基础验证
// 与玩法参数相关的交叉验证见 Validate
func ParseBuildingLayout(data []byte) (*BuildingLayout, error) {
	layout := &BuildingLayout{}
	if err := yaml.Unmarshal(data, layout); err != nil {
		return nil, fmt.Errorf("failed to parse building layout YAML: %w", err)
	}

	if len(layout.Pieces) == 0 {
		return nil, fmt.Errorf("building layout has no pieces")
	}

	for i, piece := range layout.Pieces {
		if piece.Width <= 0 || piece.Height <= 0 {
			return nil, fmt.Errorf("piece %d: size must be positive, got %vx%v", i, piece.Width, piece.Height)
		}
		if piece.DisappearAt < 0 {
			return nil, fmt.Errorf("piece %d: disappearAt must be >= 0, got %v", i, piece.DisappearAt)
		}
		if piece.Pillar < 0 {
			return nil, fmt.Errorf("piece %d: pillar must be >= 0, got %d", i, piece.Pillar)
		}
	}

	return layout, nil
}

// LoadBuildingLayout 从嵌入资源加载建筑布局
//
// 参数：
//   - path: 资源路径，如 "data/building.yaml"
func LoadBuildingLayout(path string) (*BuildingLayout, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read building layout %s: %w", path, err)
	}

	layout, err := ParseBuildingLayout(data)
	if err != nil {
		return nil, fmt.Errorf("building layout %s: %w", path, err)
	}

	return layout, nil
}

// Validate 验证布局与玩法参数的一致性：
//   - 柱子编号恰好覆盖 1..PillarCount，每个编号只出现一次
//   - 每个构件在坍塌动画结束前完成消失过渡
func (l *BuildingLayout) Validate(cfg *ClickerConfig) error {
	seen := make(map[int]bool, cfg.PillarCount)

	for i, piece := range l.Pieces {
		if piece.IsPillar() {
			if piece.Pillar > cfg.PillarCount {
				return fmt.Errorf("piece %d: pillar %d exceeds pillarCount %d", i, piece.Pillar, cfg.PillarCount)
			}
			if seen[piece.Pillar] {
				return fmt.Errorf("piece %d: duplicate pillar %d", i, piece.Pillar)
			}
			seen[piece.Pillar] = true
		}

		if piece.DisappearAt+cfg.PieceVanishDuration > cfg.BoomDuration {
			return fmt.Errorf("piece %d: disappearAt %v + vanish %v exceeds boomDuration %v",
				i, piece.DisappearAt, cfg.PieceVanishDuration, cfg.BoomDuration)
		}
	}

	if len(seen) != cfg.PillarCount {
		return fmt.Errorf("layout marks %d pillars, want %d", len(seen), cfg.PillarCount)
	}

	return nil
}

// PillarPieces 返回各柱子对应的构件下标，按柱子编号排序
// 布局需已通过 Validate
func (l *BuildingLayout) PillarPieces(pillarCount int) []int {
	indices := make([]int, pillarCount)
	for i := range indices {
		indices[i] = -1
	}
	for i, piece := range l.Pieces {
		if piece.IsPillar() && piece.PillarIndex() < pillarCount {
			indices[piece.PillarIndex()] = i
		}
	}
	return indices
}
