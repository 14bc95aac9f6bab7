package domain

import (
	"strings"
	"testing"
)

func TestSimple_EscapesEveryReservedChar(t *testing.T) {
	for _, c := range reserved {
		in := "a" + string(c) + "b"
		want := "a\\" + string(c) + "b"
		if got := Simple(in).Render(); got != want {
			t.Fatalf("expected %q for input %q, got %q", want, in, got)
		}
	}
}

func TestSimple_LeavesNonReservedAlone(t *testing.T) {
	// '.' e '@' não são reservados e têm que passar intactos
	if got := Simple("user@example.com").Render(); got != "user@example.com" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestExact_QuotesAfterEscaping(t *testing.T) {
	if got := Exact("a(b").Render(); got != `"a\(b"` {
		t.Fatalf("expected quoted escaped text, got %q", got)
	}
}

func TestRegex_WrapsInSlashes(t *testing.T) {
	if got := Regex("joe").Render(); got != "/joe/" {
		t.Fatalf("expected slash-wrapped regex, got %q", got)
	}
}

func TestOr_JoinsWithOR(t *testing.T) {
	q := Or{Simple("a"), Exact("b")}
	if got := q.Render(); got != `a OR "b"` {
		t.Fatalf("expected OR join, got %q", got)
	}
}

func TestAnd_JoinsWithSpace(t *testing.T) {
	q := And{Simple("a"), Simple("b")}
	if got := q.Render(); got != "a b" {
		t.Fatalf("expected space join, got %q", got)
	}
}

func TestNested_RendersChildrenBeforeJoining(t *testing.T) {
	q := Or{And{Simple("a"), Simple("b")}, Exact("c d")}
	if got := q.Render(); got != `a b OR "c d"` {
		t.Fatalf("expected recursive render, got %q", got)
	}
}

func TestQuery_RendersFieldPrefix(t *testing.T) {
	q := Domain(Simple("example.com"))
	if got := q.Render(); got != "domain:example.com" {
		t.Fatalf("expected field prefix, got %q", got)
	}
}

func TestQuery_FieldTableIsFixed(t *testing.T) {
	cases := []struct {
		q    Query
		want string
	}{
		{Email(Simple("x")), "email:x"},
		{IPAddress(Simple("x")), "ip_address:x"},
		{Username(Simple("x")), "username:x"},
		{Password(Simple("x")), "password:x"},
		{HashedPassword(Simple("x")), "hashed_password:x"},
		{Name(Simple("x")), "name:x"},
		{Domain(Simple("x")), "domain:x"},
		{Vin(Simple("x")), "vin:x"},
		{Phone(Simple("x")), "phone:x"},
		{Address(Simple("x")), "address:x"},
	}
	for _, c := range cases {
		if got := c.q.Render(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestQuery_NoLocalValidation(t *testing.T) {
	// query vazia é problema do provedor (302 -> ErrInvalidQuery), não nosso
	q := Email(Simple(""))
	if got := q.Render(); !strings.HasPrefix(got, "email:") {
		t.Fatalf("expected render of empty term, got %q", got)
	}
}
