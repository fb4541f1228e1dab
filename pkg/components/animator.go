package components

// AnimatorComponent 动画参数表，实现 Animator 接口
// 逻辑层只写入布尔参数，表现层读取后选择动画
type AnimatorComponent struct {
	params map[string]bool
}

// NewAnimatorComponent 创建空的参数表
func NewAnimatorComponent() *AnimatorComponent {
	return &AnimatorComponent{params: make(map[string]bool)}
}

// SetBool 实现 Animator 接口
func (a *AnimatorComponent) SetBool(name string, value bool) {
	if a.params == nil {
		a.params = make(map[string]bool)
	}
	a.params[name] = value
}

// Bool 读取参数，未设置时为 false
func (a *AnimatorComponent) Bool(name string) bool {
	return a.params[name]
}
