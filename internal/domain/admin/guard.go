package admin

// LoginRoute 登录页路由。
const LoginRoute = "/login"

// Decision 路由守卫对单次导航的判定结果。
type Decision int

const (
	// DecisionRender 放行，正常渲染目标路由。
	DecisionRender Decision = iota
	// DecisionRedirectLogin 未登录，跳转登录页。
	DecisionRedirectLogin
	// DecisionRedirectDefault 已登录但无权限，跳转该角色默认路由。
	DecisionRedirectDefault
)

// ResolveRoute 按当前身份判定一次导航。除显式登出外，
// 不存在从已登录回到未登录的转移：token 过期表现为请求失败，
// 不在这里处理。
func ResolveRoute(id Identity, pathname string) (Decision, string) {
	if !id.IsLoggedIn || id.Role == "" {
		return DecisionRedirectLogin, LoginRoute
	}
	if !HasRouteAccess(id.Role, pathname) {
		return DecisionRedirectDefault, DefaultRoute(id.Role)
	}
	return DecisionRender, pathname
}
