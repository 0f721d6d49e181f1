// Package theme holds the dashboard's visual theme: colour palette,
// typography, spacing and breakpoint constants.
//
// The theme is a single immutable value. Default returns it by value and
// every nested part is a plain struct, so callers always hold their own copy:
//
//	t := theme.Default()
//	page.Background = t.Colors.Background
//	button.Color = t.PrimaryColor()
//	if v, ok := t.Lookup("breakpoints.tablet"); ok {
//		grid.Breakpoint = v
//	}
package theme
