package panel_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/fieldset"
	"github.com/goliatone/go-cmsfields/pkg/panel"
)

const pageTemplate = `<!DOCTYPE html>
<html %s>
<head><title>page</title></head>
<body>
<button id="toggle_plenti_cms"><span id="toggle_icon">*</span></button>
<aside id="plenti_cms" %s></aside>
<p id="other">text</p>
</body>
</html>`

func page(rootAttrs, panelAttrs string) string {
	return strings.Replace(strings.Replace(pageTemplate, "%s", rootAttrs, 1), "%s", panelAttrs, 1)
}

func TestAttach_MountGeneratesIntoPanel(t *testing.T) {
	doc, err := dom.ParseString(page(`x-data='{"title": "Hello", "views": 42}'`, ""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ctrl, err := panel.Attach(doc)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	fields := ctrl.Mount()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	for _, field := range fields {
		if !dom.Contains(ctrl.Panel(), field.Input) {
			t.Fatalf("input %s not inside panel", field.Name)
		}
	}

	again := ctrl.Mount()
	if len(again) != 2 || len(dom.Children(ctrl.Panel())) != 8 {
		t.Fatalf("expected second mount to be a no-op, panel has %d children", len(dom.Children(ctrl.Panel())))
	}
}

func TestController_ClickTogglesVisibility(t *testing.T) {
	doc, err := dom.ParseString(page(`x-data="{}"`, ""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ctrl, err := panel.Attach(doc)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	if ctrl.Visible() {
		t.Fatalf("expected panel hidden initially")
	}
	if !ctrl.Click("toggle_plenti_cms") || !ctrl.Visible() {
		t.Fatalf("expected first click to add the visibility class")
	}
	if !ctrl.Click("toggle_icon") || ctrl.Visible() {
		t.Fatalf("expected click on trigger descendant to remove the class")
	}
	if ctrl.Click("other") || ctrl.Click("missing") {
		t.Fatalf("expected clicks outside the trigger to be ignored")
	}
	if ctrl.Visible() {
		t.Fatalf("expected state unchanged by ignored clicks")
	}
}

func TestController_ToggleTwiceRestoresState(t *testing.T) {
	for _, initial := range []string{``, `class="menu-visible"`, `class="dark menu-visible wide"`} {
		doc, err := dom.ParseString(page(`x-data="{}"`, initial))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		ctrl, err := panel.Attach(doc)
		if err != nil {
			t.Fatalf("attach: %v", err)
		}

		before := ctrl.Visible()
		beforeClass, _ := dom.Attr(ctrl.Panel(), "class")
		ctrl.Toggle()
		ctrl.Toggle()
		if ctrl.Visible() != before {
			t.Fatalf("initial %q: visibility changed after two toggles", initial)
		}
		if before {
			afterClass, _ := dom.Attr(ctrl.Panel(), "class")
			if !dom.HasClass(ctrl.Panel(), panel.DefaultVisibleClass) || len(strings.Fields(afterClass)) != len(strings.Fields(beforeClass)) {
				t.Fatalf("initial %q: class list changed to %q", initial, afterClass)
			}
		}
	}
}

func TestNew_Errors(t *testing.T) {
	doc, err := dom.ParseString(page("", ""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	_, err = panel.New(doc, `not an object`, panel.DefaultPanelID, panel.DefaultTriggerID)
	if !errors.Is(err, fieldset.ErrConfigParse) {
		t.Fatalf("expected config-parse error, got %v", err)
	}

	_, err = panel.New(doc, `{}`, "nope", panel.DefaultTriggerID)
	var missing *panel.MissingElementError
	if !errors.As(err, &missing) || missing.Role != panel.RolePanel || missing.ID != "nope" {
		t.Fatalf("expected missing panel error, got %v", err)
	}
	if !errors.Is(err, panel.ErrMissingElement) {
		t.Fatalf("expected ErrMissingElement, got %v", err)
	}

	_, err = panel.New(doc, `{}`, panel.DefaultPanelID, "nope")
	if !errors.As(err, &missing) || missing.Role != panel.RoleTrigger {
		t.Fatalf("expected missing trigger error, got %v", err)
	}
}

func TestAttach_MissingAttribute(t *testing.T) {
	doc, err := dom.ParseString(page("", ""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, err := panel.Attach(doc); !errors.Is(err, fieldset.ErrConfigParse) {
		t.Fatalf("expected config-parse error, got %v", err)
	}

	ctrl, err := panel.Attach(doc, panel.WithEmptyOnMissingConfig())
	if err != nil {
		t.Fatalf("attach with fallback: %v", err)
	}
	if ctrl.Fields().Len() != 0 || len(ctrl.Mount()) != 0 {
		t.Fatalf("expected empty field set")
	}
}

func TestAttach_CustomIDsAndAttribute(t *testing.T) {
	doc, err := dom.ParseString(`<html data-cms="{count: 3}"><body><a id="open">x</a><div id="editor"></div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ctrl, err := panel.Attach(doc,
		panel.WithDataAttribute("data-cms"),
		panel.WithPanelID("editor"),
		panel.WithTriggerID("open"),
		panel.WithVisibleClass("is-open"),
	)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	fields := ctrl.Mount()
	if len(fields) != 1 || fields[0].InputType() != panel.InputTypeNumber {
		t.Fatalf("expected one numeric field, got %+v", fields)
	}
	if !ctrl.Click("open") || !dom.HasClass(ctrl.Panel(), "is-open") {
		t.Fatalf("expected custom visibility class to be toggled")
	}
}

func TestNewWithFields(t *testing.T) {
	doc, err := dom.ParseString(page(`x-data='{"ignored":"yes"}'`, ""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	set := fieldset.New(
		fieldset.Field{Name: "headline", Value: fieldset.Text("Hi")},
		fieldset.Field{Name: "rank", Value: fieldset.Number(2)},
	)

	ctrl, err := panel.NewWithFields(doc, set, panel.DefaultPanelID, panel.DefaultTriggerID)
	if err != nil {
		t.Fatalf("new with fields: %v", err)
	}
	fields := ctrl.Mount()
	if len(fields) != 2 || fields[0].Name != "headline" || fields[1].InputType() != panel.InputTypeNumber {
		t.Fatalf("unexpected generated fields %+v", fields)
	}
	if dom.FindByID(doc, "ignored") != nil {
		t.Fatalf("root attribute must not be read when fields are supplied")
	}

	_, err = panel.NewWithFields(doc, set, "absent", panel.DefaultTriggerID)
	if !errors.Is(err, panel.ErrMissingElement) {
		t.Fatalf("expected missing-element, got %v", err)
	}
}
