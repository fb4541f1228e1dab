package app

import (
	"github.com/gonewx/last12h/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls 一帧的玩家输入
type Controls struct {
	Up, Down, Left, Right bool
	Interact              bool
	Attack                bool
	Heal                  bool
	Start                 bool
	Continue              bool
	Restart               bool
}

// ReadControls 读取键盘输入
// 移动键按住生效，其余按键只在按下的那一帧生效
func ReadControls() Controls {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return Controls{
		Up:       pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:     pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:     pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:    pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyE),
		Attack:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Heal:     inpututil.IsKeyJustPressed(ebiten.KeyH),
		Start:    inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Continue: inpututil.IsKeyJustPressed(ebiten.KeyC),
		Restart:  inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Intent 把方向键转换为单位长度的移动意图，斜向移动不会更快
func (c Controls) Intent() utils.Vec2 {
	var v utils.Vec2
	if c.Up {
		v.Y--
	}
	if c.Down {
		v.Y++
	}
	if c.Left {
		v.X--
	}
	if c.Right {
		v.X++
	}
	return v.Normalize()
}
