package components

import (
	"errors"

	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/utils"
)

// ErrNilMovement 直线速度模式下移动向量不能为空
// 属于调用方的编程错误，调用方应放弃该实体本帧的后续更新
var ErrNilMovement = errors.New("movement vector cannot be nil if pathfinding is disabled")

// AnimWalk 行走动画参数名
const AnimWalk = "isWalk"

// MovementMode 移动后端模式
type MovementMode int

const (
	// MovementDirectVelocity 直接设置刚体速度
	MovementDirectVelocity MovementMode = iota
	// MovementPathFollowing 由寻路后端驱动，速度只能回读
	MovementPathFollowing
)

// String 返回移动模式名称
func (m MovementMode) String() string {
	if m == MovementPathFollowing {
		return "PathFollowing"
	}
	return "DirectVelocity"
}

// Facing 朝向
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// TargetHandle 对另一个实体的弱引用（只读查询，不持有其生命周期）
type TargetHandle interface {
	Position() utils.Vec2
	IsAlive() bool
}

// Body 直线速度模式的后端（刚体）
type Body interface {
	SetVelocity(v utils.Vec2)
}

// PathFollower 寻路模式的后端
// 速度由后端计算，只能通过 Velocity() 回读
type PathFollower interface {
	SetCanMove(canMove bool)
	Velocity() utils.Vec2
	SetMaxSpeed(speed float64)
	SetTarget(target TargetHandle)
}

// Animator 动画参数接口（可选，不是所有实体都有动画）
type Animator interface {
	SetBool(name string, value bool)
}

// MovementComponent 统一两种移动后端的移动模型
//
// 每帧由外部调用一次 ApplyMovement，组件负责：
//   - 把移动意图转换为对应后端的运动
//   - 维护 isMoving 状态，仅在状态翻转时触发 OnStartMoving / OnStopMoving
//   - 每帧同步行走动画参数，并根据水平速度更新朝向
//
// 移动模式在 Init 时根据是否存在寻路后端确定，之后不再改变。
type MovementComponent struct {
	Speed   float64 // 移动速度（世界单位/秒），寻路模式下作为最大速度
	CanMove bool    // 是否允许移动（关卡切换、游戏结束时由外部关闭）

	mode        MovementMode
	body        Body
	follower    PathFollower
	animator    Animator
	initialized bool

	isMoving bool
	facing   Facing
	movement utils.Vec2 // 最近一次得到的运动向量

	OnStartMoving event.Notify
	OnStopMoving  event.Notify
}

// NewMovementComponent 创建移动组件，默认允许移动、朝右
func NewMovementComponent(speed float64) *MovementComponent {
	return &MovementComponent{
		Speed:   speed,
		CanMove: true,
		facing:  FacingRight,
	}
}

// Init 检测移动后端并确定移动模式
//
// 参数：
//   - body: 刚体后端，可为 nil
//   - follower: 寻路后端，非 nil 时使用寻路模式
//   - animator: 动画后端，可为 nil（不更新动画参数）
//   - target: 寻路目标，仅寻路模式使用
func (m *MovementComponent) Init(body Body, follower PathFollower, animator Animator, target TargetHandle) {
	if m.initialized {
		return
	}
	m.initialized = true
	m.body = body
	m.animator = animator

	if follower != nil {
		m.mode = MovementPathFollowing
		m.follower = follower
		follower.SetTarget(target)
		follower.SetMaxSpeed(m.Speed)
		return
	}
	m.mode = MovementDirectVelocity
}

// Mode 当前移动模式
func (m *MovementComponent) Mode() MovementMode {
	return m.mode
}

// IsMoving 最近一次 ApplyMovement 后是否处于移动状态
func (m *MovementComponent) IsMoving() bool {
	return m.isMoving
}

// Facing 当前朝向（水平速度为 0 时保持上一次的朝向）
func (m *MovementComponent) Facing() Facing {
	return m.facing
}

// Velocity 最近一次得到的运动向量
// 直线模式下是移动意图本身，寻路模式下是后端回读的速度
func (m *MovementComponent) Velocity() utils.Vec2 {
	return m.movement
}

// StopMovement 停止移动，等价于 ApplyMovement(零向量)
func (m *MovementComponent) StopMovement() error {
	zero := utils.Zero
	return m.ApplyMovement(&zero)
}

// ApplyMovement 应用本帧的移动意图
//
// 参数：
//   - intent: 移动意图；寻路模式下 nil 表示"继续追踪目标"，零向量表示停止
//
// 返回：
//   - error: 直线模式下 intent 为 nil 时返回 ErrNilMovement
func (m *MovementComponent) ApplyMovement(intent *utils.Vec2) error {
	if m.mode == MovementDirectVelocity && intent == nil {
		return ErrNilMovement
	}

	if !m.CanMove {
		m.halt()
		m.movement = utils.Zero
		if m.isMoving {
			m.setWalk(false)
			m.isMoving = false
			event.Fire(&m.OnStopMoving)
		}
		return nil
	}

	var result utils.Vec2
	if m.mode == MovementPathFollowing {
		if intent != nil && intent.IsZero() {
			m.follower.SetCanMove(false)
			result = utils.Zero
		} else {
			m.follower.SetCanMove(true)
			result = m.follower.Velocity()
		}
	} else {
		result = *intent
		if m.body != nil {
			m.body.SetVelocity(result.Scale(m.Speed))
		}
	}
	m.movement = result

	moving := result.Len() > 0
	m.setWalk(moving)

	if result.X > 0 {
		m.facing = FacingRight
	} else if result.X < 0 {
		m.facing = FacingLeft
	}

	if !m.isMoving && moving {
		m.isMoving = true
		event.Fire(&m.OnStartMoving)
	} else if m.isMoving && !moving {
		m.isMoving = false
		event.Fire(&m.OnStopMoving)
	}
	return nil
}

// halt 让后端停止运动
func (m *MovementComponent) halt() {
	if m.mode == MovementPathFollowing {
		m.follower.SetCanMove(false)
		return
	}
	if m.body != nil {
		m.body.SetVelocity(utils.Zero)
	}
}

func (m *MovementComponent) setWalk(walking bool) {
	if m.animator != nil {
		m.animator.SetBool(AnimWalk, walking)
	}
}
