/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cant

import (
	"bytes"
	"errors"
	"testing"

	"dirpx.dev/cant/severity"
	"dirpx.dev/cant/sink"
)

func TestTemplate_Defaults(t *testing.T) {
	k := NewTemplate().Finalize()

	if k.Name() != DefaultName {
		t.Fatalf("default name = %q, want %q", k.Name(), DefaultName)
	}
	if k.Level() != severity.Empty {
		t.Fatalf("default level = %q, want empty", k.Level())
	}
	if k.Status() != 0 {
		t.Fatalf("default status = %d, want 0", k.Status())
	}

	e := k.New()
	if e.Error() != "Can't because" {
		t.Fatalf("empty-template message = %q", e.Error())
	}
}

func TestTemplate_FluentChain(t *testing.T) {
	k := NewTemplate().
		SetName("OpenError").
		SetCant("open file %s").
		SetBecause("the disk is %s").
		SetStatus(500).
		SetLevel(severity.Error).
		Finalize()

	e := k.New("/tmp/x", "full")
	if e.Error() != "Can't open file /tmp/x because the disk is full" {
		t.Fatalf("message = %q", e.Error())
	}
	if e.Name() != "OpenError" {
		t.Fatalf("name = %q", e.Name())
	}
	if e.Status() != 500 || e.Level() != severity.Error {
		t.Fatalf("status/level = %d/%q", e.Status(), e.Level())
	}
}

func TestTemplate_Options(t *testing.T) {
	k := NewTemplate(
		WithName("OpenError"),
		WithCant("open %s"),
		WithBecause("reason %s"),
		WithStatus(503),
		WithLevel(severity.Warn),
	).Finalize()

	e := k.New("a", "b")
	if e.Error() != "Can't open a because reason b" {
		t.Fatalf("message = %q", e.Error())
	}
	if e.Status() != 503 || e.Level() != severity.Warn {
		t.Fatalf("status/level = %d/%q", e.Status(), e.Level())
	}
}

func TestTemplate_SetBecauseClearsCauseFlag(t *testing.T) {
	tpl := NewTemplate().SetCant("do %s").SetBecauseCause()
	tpl.SetBecause("reason %s")

	cause := NewTemplate().
		SetCant("inner").
		SetBecause("it broke").
		SetLevel(severity.Fatal).
		Finalize().New()

	// The cause flag is cleared, so the instance argument is formatted
	// as an ordinary string and its level must not propagate.
	e := tpl.Finalize().New("x", cause)
	if e.Level() == severity.Fatal {
		t.Fatal("cleared cause flag must not inherit level")
	}
	if e.Error() != "Can't do x because reason Can't inner because it broke" {
		t.Fatalf("message = %q", e.Error())
	}
}

func TestTemplate_FinalizeIsIndependent(t *testing.T) {
	tpl := NewTemplate().SetName("First").SetCant("do %s").SetBecause("it is %s")
	k1 := tpl.Finalize()

	tpl.SetName("Second").SetCant("redo %s %s").SetBecause("changed").SetStatus(404)
	k2 := tpl.Finalize()

	e1 := k1.New("a", "b")
	if e1.Name() != "First" || e1.Error() != "Can't do a because it is b" {
		t.Fatalf("first kind changed after builder mutation: %q / %q", e1.Name(), e1.Error())
	}
	if e1.Status() != 0 {
		t.Fatalf("first kind picked up later status: %d", e1.Status())
	}

	e2 := k2.New("a", "b")
	if e2.Name() != "Second" || e2.Error() != "Can't redo a b because changed" {
		t.Fatalf("second kind = %q / %q", e2.Name(), e2.Error())
	}
}

func TestTemplate_SetSinks(t *testing.T) {
	var buf bytes.Buffer

	tpl := NewTemplate().SetCant("x")
	if err := tpl.SetSinks(&buf); err != nil {
		t.Fatalf("SetSinks(writer) unexpected error: %v", err)
	}

	if err := tpl.Finalize().New().Log(false); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("configured sink received nothing")
	}
}

func TestTemplate_SetSinks_Invalid(t *testing.T) {
	tpl := NewTemplate()

	err := tpl.SetSinks(42)
	if err == nil {
		t.Fatal("SetSinks(42) expected error")
	}
	var ite *sink.InvalidTypeError
	if !errors.As(err, &ite) {
		t.Fatalf("error type = %T, want *sink.InvalidTypeError", err)
	}
	if ite.Type != "int" {
		t.Fatalf("observed type = %q, want %q", ite.Type, "int")
	}
}

func TestTemplate_MustSinksPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustSinks on invalid input must panic")
		}
	}()
	NewTemplate().MustSinks(struct{}{})
}

func TestTemplate_SinksSnapshotFrozen(t *testing.T) {
	var first, second bytes.Buffer

	tpl := NewTemplate().SetCant("x")
	if err := tpl.SetSinks(&first); err != nil {
		t.Fatalf("SetSinks: %v", err)
	}
	k := tpl.Finalize()

	if err := tpl.SetSinks(&second); err != nil {
		t.Fatalf("SetSinks: %v", err)
	}

	if err := k.New().Log(false); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if first.Len() == 0 {
		t.Fatal("frozen kind must keep writing to its captured sink")
	}
	if second.Len() != 0 {
		t.Fatal("frozen kind must not see sinks configured after Finalize")
	}
}
