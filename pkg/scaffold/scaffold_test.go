package scaffold_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/scaffold"
)

func chrome() scaffold.Chrome {
	return scaffold.Chrome{
		PanelID:      "plenti_cms",
		TriggerID:    "toggle_plenti_cms",
		Label:        "Edit page",
		VisibleClass: "menu-visible",
	}
}

func TestEnsure_AddsMissingElements(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><main>content</main></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, err := scaffold.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	added, err := s.Ensure(doc, chrome())
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if diff := cmp.Diff([]string{"trigger", "panel"}, added); diff != "" {
		t.Fatalf("added mismatch (-want +got):\n%s", diff)
	}

	trigger := dom.FindByID(doc, "toggle_plenti_cms")
	if trigger == nil || trigger.Data != "button" {
		t.Fatalf("expected trigger button")
	}
	panelNode := dom.FindByID(doc, "plenti_cms")
	if panelNode == nil || panelNode.Data != "aside" || dom.HasClass(panelNode, "menu-visible") {
		t.Fatalf("expected hidden aside panel")
	}
	if panelNode.Parent.Data != "body" {
		t.Fatalf("expected panel appended to body, got %s", panelNode.Parent.Data)
	}
}

func TestEnsure_KeepsExistingElements(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="plenti_cms"></div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, err := scaffold.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	c := chrome()
	c.Visible = true
	added, err := s.Ensure(doc, c)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if diff := cmp.Diff([]string{"trigger"}, added); diff != "" {
		t.Fatalf("added mismatch (-want +got):\n%s", diff)
	}
	if dom.FindByID(doc, "plenti_cms").Data != "div" {
		t.Fatalf("expected original panel to be kept")
	}

	again, err := s.Ensure(doc, c)
	if err != nil || len(again) != 0 {
		t.Fatalf("expected no-op, got %v %v", again, err)
	}
}

func TestSanitizeIcon(t *testing.T) {
	raw := `<svg viewBox="0 0 10 10" onload="alert(1)"><script>alert(1)</script><path d="M0 0h10"/></svg><img src=x>`
	got := scaffold.SanitizeIcon(raw)
	if strings.Contains(got, "script") || strings.Contains(got, "onload") || strings.Contains(got, "img") {
		t.Fatalf("unsafe markup survived: %s", got)
	}
	if !strings.Contains(got, `<path d="M0 0h10"`) {
		t.Fatalf("expected path to survive: %s", got)
	}
	if scaffold.SanitizeIcon("   ") != "" {
		t.Fatalf("expected empty result for blank input")
	}
}
