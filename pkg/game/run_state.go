package game

import (
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

// Phase 一局游戏所处的阶段
type Phase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying Phase = iota
	// PhaseGameOver 生命耗尽，等待重新开始
	PhaseGameOver
	// PhaseWon 通关（关卡超过最高关），等待重新开始
	PhaseWon
)

// String 返回阶段名称（日志使用）
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// ResultTitle 结算画面的标题，进行中返回空字符串
// 胜利与失败共用同一个结算流程，只有标题不同
func (p Phase) ResultTitle() string {
	switch p {
	case PhaseGameOver:
		return "Game Over"
	case PhaseWon:
		return "You Win!"
	default:
		return ""
	}
}

// RunState 一局游戏的全局状态
//
// 由 session.Session 持有，通过构造函数传给每个系统；
// 重新开始时调用 Reset 恢复初始值。整局状态不会被持久化。
type RunState struct {
	Score      int     // 分数，只增不减
	Lives      int     // 剩余生命，[0, StartLives]
	Level      int     // 当前关卡，从 1 开始
	EnemySpeed float64 // 普通敌机下落速度（像素/帧）
	ElapsedMs  float64 // 会话时钟（毫秒），只在 PhasePlaying 时前进

	PlayerID ecs.EntityID // 玩家实体
	BossID   ecs.EntityID // 当前 Boss 实体，0 表示没有 Boss

	Phase Phase
}

// NewRunState 创建处于初始状态的 RunState
//
// 参数:
//   - rules: 计分与关卡规则（初始生命、初始关卡）
//   - baseSpeed: 第 1 关敌机速度
func NewRunState(rules config.RulesConfig, baseSpeed float64) *RunState {
	rs := &RunState{}
	rs.Reset(rules, baseSpeed)
	return rs
}

// Reset 恢复初始状态
// 实体ID由调用方在重建实体后重新设置
func (rs *RunState) Reset(rules config.RulesConfig, baseSpeed float64) {
	*rs = RunState{
		Lives:      rules.StartLives,
		Level:      rules.StartLevel,
		EnemySpeed: baseSpeed,
		Phase:      PhasePlaying,
	}
}

// AddScore 增加分数（负数被忽略）
func (rs *RunState) AddScore(points int) {
	if points > 0 {
		rs.Score += points
	}
}

// LoseLife 扣除一条生命
// 生命已经为 0 时不再扣除，返回 false
func (rs *RunState) LoseLife() bool {
	if rs.Lives <= 0 {
		return false
	}
	rs.Lives--
	return true
}

// IsMilestone 分数是否恰好是 milestone 的正整数倍
func (rs *RunState) IsMilestone(milestone int) bool {
	return milestone > 0 && rs.Score > 0 && rs.Score%milestone == 0
}

// HasBoss 当前是否有 Boss
func (rs *RunState) HasBoss() bool {
	return rs.BossID != 0
}

// HasWon 关卡是否已超过最高关
func (rs *RunState) HasWon(maxLevel int) bool {
	return rs.Level > maxLevel
}

// IsOver 是否处于结算阶段（失败或胜利）
func (rs *RunState) IsOver() bool {
	return rs.Phase != PhasePlaying
}

// Advance 推进会话时钟
func (rs *RunState) Advance(deltaTime float64) {
	if rs.Phase == PhasePlaying && deltaTime > 0 {
		rs.ElapsedMs += deltaTime * 1000
	}
}
