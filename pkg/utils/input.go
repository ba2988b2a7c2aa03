// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsRefreshDown 返回刷新输入当前是否处于按下状态（电平信号）
// 同时支持空格键、鼠标左键和触摸，边沿检测由玩法逻辑自己完成
func IsRefreshDown() bool {
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		return true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}

	// 触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	return len(touchIDs) > 0
}

// IsResetDown 返回重开一局输入当前是否处于按下状态（电平信号）
func IsResetDown() bool {
	return ebiten.IsKeyPressed(ebiten.KeyR)
}

// IsMenuJustPressed 检查是否刚刚按下返回菜单键
func IsMenuJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// 数字键快捷键映射
var digitHotkeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// JustPressedDigit 检查本帧是否刚刚按下数字键 1-9
// 返回数字值和是否按下；用于菜单场景选择
func JustPressedDigit() (int, bool) {
	for i, key := range digitHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			return i + 1, true
		}
	}
	return 0, false
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
