// authz/nav.go
package authz

import "github.com/evgrid/console/model"

// NavNode is one entry of the static route tree. Gates nest: a node's
// allow-list is only evaluated once every ancestor gate has passed.
type NavNode struct {
	Path     string    `json:"path,omitempty"`
	Label    string    `json:"label,omitempty"`
	Allowed  []string  `json:"allowed,omitempty"`
	Children []NavNode `json:"children,omitempty"`
}

var backofficeOnly = []string{string(model.RoleBackoffice)}
var operatorOnly = []string{string(model.RoleOperator)}
var anyStaff = []string{string(model.RoleBackoffice), string(model.RoleOperator)}

// DefaultTree mirrors the console's navigation: an outer authentication
// gate wrapping role-gated groups, defined once at startup and immutable.
func DefaultTree() []NavNode {
	return []NavNode{
		{
			// authentication-presence gate, no role restriction
			Children: []NavNode{
				{Path: "/dashboard", Label: "Dashboard"},
				{
					Allowed: backofficeOnly,
					Children: []NavNode{
						{Path: "/backoffice", Label: "Backoffice"},
						{Path: "/users", Label: "Web Users"},
						{Path: "/register", Label: "Create Web User"},
						{Path: "/owners", Label: "EV Owners"},
						{Path: "/owners/new", Label: "Create EV Owner"},
						{Path: "/stations", Label: "Stations"},
						{Path: "/stations/new", Label: "Register Station"},
						{Path: "/bookings", Label: "Bookings"},
					},
				},
				{
					Allowed: operatorOnly,
					Children: []NavNode{
						{Path: "/operator", Label: "Operator"},
						{Path: "/operator/approvals", Label: "Approvals"},
						{Path: "/operator/scan", Label: "Scan & Finalize"},
						{Path: "/operator/bookings", Label: "Station Bookings"},
					},
				},
				{
					Allowed: anyStaff,
					Children: []NavNode{
						{Path: "/me/profile", Label: "My Profile"},
					},
				},
				{Path: "/unauthorized", Label: "Unauthorized"},
			},
		},
	}
}

// Resolve walks the tree to the node matching path and evaluates every
// gate on the way down. The first non-Allow decision wins, so an inner
// allow-list is never consulted when an outer gate already failed.
func Resolve(tree []NavNode, path string, authenticated bool, role string) Decision {
	if d, found := resolve(tree, path, authenticated, role); found {
		return d
	}
	// Unknown paths fall back to sign-in, like the SPA's wildcard route.
	return RedirectLogin
}

func resolve(nodes []NavNode, path string, authenticated bool, role string) (Decision, bool) {
	for _, n := range nodes {
		// The outermost tree gate is authentication-only; nested gates
		// carry allow-lists. Both share one evaluation.
		d := Decide(authenticated, role, n.Allowed)
		if n.Path == path {
			return d, true
		}
		if len(n.Children) == 0 {
			continue
		}
		cd, found := resolve(n.Children, path, authenticated, role)
		if !found {
			continue
		}
		if d != Allow {
			return d, true
		}
		return cd, true
	}
	return Allow, false
}

// Visible prunes the tree to the nodes a resolved role may enter, for the
// role-aware navigation menu. Gate-only nodes are flattened away.
func Visible(nodes []NavNode, role string) []NavNode {
	var out []NavNode
	for _, n := range nodes {
		if len(n.Allowed) > 0 && !CanEnter(role, n.Allowed) {
			continue
		}
		children := Visible(n.Children, role)
		if n.Path == "" {
			// structural gate node: hoist surviving children
			out = append(out, children...)
			continue
		}
		m := n
		m.Allowed = nil
		m.Children = children
		out = append(out, m)
	}
	return out
}
