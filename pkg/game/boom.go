package game

import "math"

// Pose 坍塌动画中单个构件的变换
// 偏移为世界坐标增量，旋转为弧度，缩放为相对倍率
type Pose struct {
	OffsetX  float64
	OffsetY  float64
	Rotation float64
	Scale    float64
}

// RestPose 返回静止姿态（无偏移、无旋转、原始大小）
func RestPose() Pose {
	return Pose{Scale: 1.0}
}

// PiecePose 计算坍塌动画中某一时刻构件的姿态
//
// 每个构件按自己的 disappearAt 时刻开始消失过渡：
// 过渡期间构件抖动减弱、旋转一整圈、缩小到 0.2 倍，
// 过渡结束后构件永久消失（直到重开一局）。
//
// 参数：
//   - disappearAt: 该构件开始消失的时刻（秒）
//   - vanishDuration: 消失过渡时长（秒）
//   - boomTimer: 坍塌动画已播放时长（秒）
//   - alreadyGone: 构件是否已在之前的帧消失
//
// 返回：
//   - Pose: 当前姿态（构件已消失时无意义）
//   - bool: 构件是否已消失
func PiecePose(disappearAt, vanishDuration, boomTimer float64, alreadyGone bool) (Pose, bool) {
	if alreadyGone {
		return Pose{}, true
	}

	progress := 0.0
	if boomTimer > disappearAt {
		progress = (boomTimer - disappearAt) / vanishDuration
	}
	if progress >= 1.0 {
		return Pose{}, true
	}

	// 抖动随消失进度减弱
	shakeAmount := (1.0 - progress) * 0.1
	pose := Pose{
		OffsetX:  math.Sin(boomTimer*20.0) * shakeAmount,
		OffsetY:  math.Cos(boomTimer*25.0) * shakeAmount,
		Rotation: progress * math.Pi * 2.0,
		Scale:    1.0 - progress*0.8,
	}
	return pose, false
}
