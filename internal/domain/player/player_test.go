package player

import "testing"

func TestParseClass(t *testing.T) {
	tests := []struct {
		option string
		want   Class
		ok     bool
	}{
		{option: "1", want: ClassElf, ok: true},
		{option: "2", want: ClassDwarf, ok: true},
		{option: "3", want: ClassWizard, ok: true},
		{option: "4", want: ClassNone, ok: false},
		{option: "álfur", want: ClassNone, ok: false},
		{option: "", want: ClassNone, ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseClass(tt.option)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseClass(%q): expected (%v, %v), got (%v, %v)", tt.option, tt.want, tt.ok, got, ok)
		}
	}
}

func TestArmDerivesWeaponOnce(t *testing.T) {
	s := NewState()
	s.Class = ClassDwarf

	if !s.Arm() {
		t.Fatal("expected first Arm to equip a weapon")
	}
	if s.Weapon != "dverga öxinni þinni" {
		t.Fatalf("expected dwarf axe, got %q", s.Weapon)
	}
	if s.Arm() {
		t.Fatal("expected second Arm to be a no-op")
	}
	if s.Weapon != "dverga öxinni þinni" {
		t.Fatalf("expected weapon unchanged, got %q", s.Weapon)
	}
	if s.Class != ClassDwarf {
		t.Fatalf("expected class untouched, got %v", s.Class)
	}
}

func TestArmWithoutClass(t *testing.T) {
	s := NewState()
	if s.Arm() {
		t.Fatal("expected Arm without class to be a no-op")
	}
	if s.Weapon != "" {
		t.Fatalf("expected no weapon, got %q", s.Weapon)
	}
}

func TestNewStateHasSessionID(t *testing.T) {
	a, b := NewState(), NewState()
	if a.SessionID == b.SessionID {
		t.Fatal("expected distinct session ids")
	}
}
