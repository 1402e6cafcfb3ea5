package prompt_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cmsfields/pkg/fieldset"
	"github.com/goliatone/go-cmsfields/pkg/prompt"
)

type scriptedDriver struct {
	answers  map[string]string
	asked    []string
	infos    []string
	failOn   string
	validate map[string]bool
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if cfg.Message == d.failOn {
		return "", prompt.ErrAborted
	}
	answer, ok := d.answers[cfg.Message]
	if !ok {
		answer = cfg.Default
	}
	if d.validate == nil {
		d.validate = make(map[string]bool)
	}
	d.validate[cfg.Message] = cfg.Validator != nil
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return true, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestEdit_UpdatesValuesInOrder(t *testing.T) {
	set, err := fieldset.Parse(`{"title": "Hello", "views": 42, "rating": 3}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	driver := &scriptedDriver{answers: map[string]string{
		"title":  "Bonjour",
		"views":  "43",
		"rating": "",
	}}

	updated, err := prompt.Edit(context.Background(), driver, set)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if diff := cmp.Diff([]string{"title", "views", "rating"}, driver.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
	if !driver.validate["views"] || driver.validate["title"] {
		t.Fatalf("expected validators only on numeric fields: %v", driver.validate)
	}

	if got := updated.Attribute(); got != `{"title":"Bonjour","views":43,"rating":3}` {
		t.Fatalf("unexpected result %s", got)
	}
	original, _ := set.Get("title")
	if original.String() != "Hello" {
		t.Fatalf("expected input set to stay untouched")
	}
}

func TestEdit_RejectsNonNumeric(t *testing.T) {
	set := fieldset.New(fieldset.Field{Name: "views", Value: fieldset.Number(1)})
	driver := &scriptedDriver{answers: map[string]string{"views": "many"}}

	if _, err := prompt.Edit(context.Background(), driver, set); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestEdit_Aborted(t *testing.T) {
	set := fieldset.New(fieldset.Field{Name: "title", Value: fieldset.Text("x")})
	driver := &scriptedDriver{failOn: "title"}

	_, err := prompt.Edit(context.Background(), driver, set)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestEdit_EmptySet(t *testing.T) {
	driver := &scriptedDriver{}
	updated, err := prompt.Edit(context.Background(), driver, fieldset.FieldSet{})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.Len() != 0 || len(driver.infos) != 1 {
		t.Fatalf("expected info message for empty set")
	}
}

func TestEdit_NumberAnswersStayJSON(t *testing.T) {
	cases := []struct {
		answer  string
		attr    string
		wantErr bool
	}{
		{answer: "43", attr: `{"views":43}`},
		{answer: "+3", attr: `{"views":3}`},
		{answer: ".5", attr: `{"views":0.5}`},
		{answer: "007", attr: `{"views":7}`},
		{answer: "0x1p4", attr: `{"views":16}`},
		{answer: "Inf", wantErr: true},
		{answer: "NaN", wantErr: true},
		{answer: "-inf", wantErr: true},
	}
	for _, tc := range cases {
		set := fieldset.New(fieldset.Field{Name: "views", Value: fieldset.Number(1)})
		driver := &scriptedDriver{answers: map[string]string{"views": tc.answer}}

		updated, err := prompt.Edit(context.Background(), driver, set)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected validation error, got %s", tc.answer, updated.Attribute())
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: edit: %v", tc.answer, err)
		}
		attr := updated.Attribute()
		if attr != tc.attr || !json.Valid([]byte(attr)) {
			t.Fatalf("%q: attribute = %s, want %s", tc.answer, attr, tc.attr)
		}
		reparsed, err := fieldset.Parse(attr)
		if err != nil {
			t.Fatalf("%q: reparse: %v", tc.answer, err)
		}
		if views, _ := reparsed.Get("views"); !views.IsNumber() {
			t.Fatalf("%q: views should stay a number after reparse", tc.answer)
		}
	}
}
