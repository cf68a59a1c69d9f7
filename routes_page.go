package rroute

import (
	"strings"

	"github.com/rohanthewiz/element"
)

// routesTable renders the registry as an HTML table.
type routesTable struct {
	Infos []RouteInfo
}

func (rt routesTable) Render(b *element.Builder) any {
	b.Table().R(
		b.Tr().R(
			b.Th().T("Name"),
			b.Th().T("Method"),
			b.Th().T("Template"),
			b.Th().T("Params"),
		),
		func() any {
			for _, info := range rt.Infos {
				b.Tr().R(
					b.Td().T(info.Name),
					b.Td().T(info.Method),
					b.Td().T(info.Template),
					b.Td().T(strings.Join(info.Params, ", ")),
				)
			}
			return nil
		}(),
	)
	return nil
}

// RoutesPage renders the registered routes as a standalone HTML page,
// handy for dumping the route table during development.
func (router *Router) RoutesPage(title string) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Title().T(title),
			b.Style().T(`
				body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
				table { border-collapse: collapse; width: 100%; }
				th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
				th { background: #e9ecef; }
			`),
		),
		b.Body().R(
			b.H1().T(title),
			element.RenderComponents(b, routesTable{Infos: router.List()}),
		),
	)

	return b.String()
}
