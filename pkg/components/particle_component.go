package components

import "image/color"

// ParticleComponent 背景粒子场中的单个粒子
//
// 纯数据组件，由 ParticleFieldSystem 创建、逐帧移动并在批次替换时销毁。
// 坐标相对于视口左上角，速度单位为像素/帧。
type ParticleComponent struct {
	X, Y   float64 // 当前位置
	Radius float64 // 半径
	DX, DY float64 // 每帧位移

	Alpha float64     // 透明度 [0, 1]
	Color color.NRGBA // 由主题色和 Alpha 合成的绘制颜色

	// Batch 生成该粒子的批次序号，用于确认整批替换
	Batch int
}
