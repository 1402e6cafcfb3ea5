// Package panel generates the CMS field controls into a page's panel element
// and owns the panel's visibility toggle.
//
// A Controller is built from a parsed document, the raw configuration string
// and the panel/trigger element ids:
//
//	ctrl, err := panel.New(doc, raw, "plenti_cms", "toggle_plenti_cms")
//	if err != nil {
//		// errors.Is(err, fieldset.ErrConfigParse) or errors.Is(err, panel.ErrMissingElement)
//	}
//	ctrl.Mount()
//	ctrl.Click("toggle_plenti_cms")
//
// Attach reads the raw configuration from the root element's data attribute
// instead of taking it as an argument.
package panel
