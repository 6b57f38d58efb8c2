package systems

import (
	"log"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/entities"
	"github.com/decker502/tanksurvive/pkg/game"
	"github.com/decker502/tanksurvive/pkg/utils"
)

// InputSystem 把一帧的操作输入应用到玩家坦克
//
// 移动：按住左/右键时每帧移动 Player.Speed 像素，位置限制在画布内。
// 射击：边沿触发，按下的那一帧发射一颗子弹，松开后才能再次发射。
type InputSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	runState      *game.RunState
	sound         SoundPlayer
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//   - rs: 整局状态（提供玩家实体ID）
//   - sound: 音效播放器，可为 nil
func NewInputSystem(em *ecs.EntityManager, cfg *config.GameConfig, rs *game.RunState, sound SoundPlayer) *InputSystem {
	return &InputSystem{
		entityManager: em,
		config:        cfg,
		runState:      rs,
		sound:         sound,
	}
}

// Update 应用本帧输入
func (s *InputSystem) Update(controls utils.Controls) {
	playerID := s.runState.PlayerID
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	speed := s.config.Player.Speed
	if controls.MoveLeft {
		pos.X -= speed
	}
	if controls.MoveRight {
		pos.X += speed
	}
	rect := utils.Rect{X: pos.X, Width: s.config.Player.Width}
	pos.X = rect.ClampX(0, float64(s.config.Screen.Width))

	if controls.Fire && !player.FireHeld {
		centerX := pos.X + s.config.Player.Width/2
		if _, err := entities.NewPlayerBullet(s.entityManager, s.config, playerID, centerX, pos.Y); err != nil {
			log.Printf("[InputSystem] Failed to fire: %v", err)
		} else {
			playSound(s.sound, config.SoundPlayerBullet)
		}
	}
	player.FireHeld = controls.Fire
}
