package player

import (
	"github.com/google/uuid"
)

type Class int

const (
	ClassNone Class = iota
	ClassElf
	ClassDwarf
	ClassWizard
)

// ParseClass maps the class menu option to a Class.
func ParseClass(option string) (Class, bool) {
	switch option {
	case "1":
		return ClassElf, true
	case "2":
		return ClassDwarf, true
	case "3":
		return ClassWizard, true
	}
	return ClassNone, false
}

// String is the transition token used by class-keyed nodes.
func (c Class) String() string {
	switch c {
	case ClassElf:
		return "elf"
	case ClassDwarf:
		return "dwarf"
	case ClassWizard:
		return "wizard"
	}
	return "none"
}

// Title is the class name shown to the player.
func (c Class) Title() string {
	switch c {
	case ClassElf:
		return "álfur"
	case ClassDwarf:
		return "dvergur"
	case ClassWizard:
		return "galdramaður"
	}
	return ""
}

// Weapon is the "class + weapon" phrase used in combat text, already inflected
// for "með ...".
func (c Class) Weapon() string {
	switch c {
	case ClassElf:
		return "álfa hnífnum þínum"
	case ClassDwarf:
		return "dverga öxinni þinni"
	case ClassWizard:
		return "galdrastafnum þínum"
	}
	return ""
}

type State struct {
	SessionID uuid.UUID
	Name      string
	Class     Class
	Weapon    string
	Path      []string
}

func NewState() *State {
	return &State{SessionID: uuid.New()}
}

// Arm equips the weapon derived from the class. It is a no-op when a weapon
// is already equipped or no class has been chosen, and reports whether
// anything changed.
func (s *State) Arm() bool {
	if s.Weapon != "" || s.Class == ClassNone {
		return false
	}
	s.Weapon = s.Class.Weapon()
	return true
}

func (s *State) Visit(id string) {
	s.Path = append(s.Path, id)
}
