package joypad

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

func TestState_Select(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)

	if s.Read(types.P1) != 0xFF {
		t.Errorf("expected nothing selected to read 0xFF, got 0x%02X", s.Read(types.P1))
	}

	s.Press(ButtonA)
	s.Press(ButtonDown)

	// select action buttons
	s.Write(types.P1, types.Bit4)
	if got := s.Read(types.P1); got != 0xDE {
		t.Errorf("expected 0xDE with A pressed, got 0x%02X", got)
	}
	// select direction buttons
	s.Write(types.P1, types.Bit5)
	if got := s.Read(types.P1); got != 0xE7 {
		t.Errorf("expected 0xE7 with down pressed, got 0x%02X", got)
	}

	s.Release(ButtonDown)
	if got := s.Read(types.P1); got != 0xEF {
		t.Errorf("expected 0xEF with nothing pressed, got 0x%02X", got)
	}
}

func TestState_Interrupt(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)

	s.Press(ButtonStart)
	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Errorf("expected joypad interrupt on press")
	}
	irq.Flag = 0
	s.Press(ButtonStart)
	if irq.Flag != 0 {
		t.Errorf("expected no interrupt while held")
	}
	s.Release(ButtonStart)
	if irq.Flag != 0 {
		t.Errorf("expected no interrupt on release")
	}
	s.Press(ButtonStart)
	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Errorf("expected joypad interrupt on second press")
	}
}

func TestButtonByName(t *testing.T) {
	if b, ok := ButtonByName("select"); !ok || b != ButtonSelect {
		t.Errorf("expected select button, got %d", b)
	}
	if _, ok := ButtonByName("turbo"); ok {
		t.Errorf("expected turbo to be unknown")
	}
}
