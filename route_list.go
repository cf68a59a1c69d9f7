package rroute

// RouteInfo represents a registered route in a flattened, human-readable
// form for inspection, debugging duplicate conflicts, and documentation.
type RouteInfo struct {
	Name     string
	Method   string
	Template string
	Params   []string
}

// List returns every registered route as RouteInfo, in registration order.
func (router *Router) List() []RouteInfo {
	infos := make([]RouteInfo, 0, len(router.order))
	for _, route := range router.Routes() {
		infos = append(infos, RouteInfo{
			Name:     route.Name(),
			Method:   route.Method(),
			Template: route.Uri().Template(),
			Params:   route.Uri().Params().Names(),
		})
	}
	return infos
}
