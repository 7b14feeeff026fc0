package timer

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

func newController() (*Controller, *interrupts.Service) {
	irq := interrupts.NewService()
	return NewController(irq), irq
}

func TestController_Divider(t *testing.T) {
	c, _ := newController()
	// DIV increments at 16384Hz, once every 256 clocks
	for i := 0; i < 255; i++ {
		c.Step(1)
	}
	if c.Read(types.DIV) != 0 {
		t.Errorf("expected DIV to be 0, got %d", c.Read(types.DIV))
	}
	c.Step(1)
	if c.Read(types.DIV) != 1 {
		t.Errorf("expected DIV to be 1, got %d", c.Read(types.DIV))
	}
	// DIV runs with the timer disabled
	for i := 0; i < 256; i++ {
		c.Step(4)
	}
	if c.Read(types.DIV) != 5 {
		t.Errorf("expected DIV to be 5, got %d", c.Read(types.DIV))
	}

	c.Write(types.DIV, 0xAB)
	if c.Read(types.DIV) != 0 {
		t.Errorf("expected write to reset DIV, got %d", c.Read(types.DIV))
	}
}

func TestController_Frequencies(t *testing.T) {
	for sel, clocks := range []int{1024, 16, 64, 256} {
		c, _ := newController()
		c.Write(types.TAC, types.Bit2|uint8(sel))
		for i := 0; i < clocks/4-1; i++ {
			c.Step(4)
		}
		if c.Read(types.TIMA) != 0 {
			t.Errorf("select %d: expected TIMA to be 0 after %d clocks, got %d", sel, clocks-4, c.Read(types.TIMA))
		}
		c.Step(4)
		if c.Read(types.TIMA) != 1 {
			t.Errorf("select %d: expected TIMA to be 1 after %d clocks, got %d", sel, clocks, c.Read(types.TIMA))
		}
	}
}

func TestController_Disabled(t *testing.T) {
	c, _ := newController()
	c.Write(types.TAC, 0x01)
	for i := 0; i < 100; i++ {
		c.Step(16)
	}
	if c.Read(types.TIMA) != 0 {
		t.Errorf("expected disabled timer to stay at 0, got %d", c.Read(types.TIMA))
	}
}

func TestController_Overflow(t *testing.T) {
	c, irq := newController()
	c.Write(types.TMA, 0xAB)
	c.Write(types.TIMA, 0xFE)
	c.Write(types.TAC, types.Bit2|0x01)

	c.Step(16)
	if c.Read(types.TIMA) != 0xFF {
		t.Errorf("expected TIMA to be 0xFF, got 0x%02X", c.Read(types.TIMA))
	}
	if irq.Flag&interrupts.TimerFlag != 0 {
		t.Errorf("expected no timer interrupt before overflow")
	}
	c.Step(16)
	if c.Read(types.TIMA) != 0xAB {
		t.Errorf("expected TIMA to reload 0xAB, got 0x%02X", c.Read(types.TIMA))
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Errorf("expected timer interrupt on overflow")
	}
}

func TestController_TAC(t *testing.T) {
	c, _ := newController()
	c.Write(types.TAC, 0xFF)
	if c.Read(types.TAC) != 0xFF {
		t.Errorf("expected TAC to read 0xFF, got 0x%02X", c.Read(types.TAC))
	}
	c.Write(types.TAC, 0x05)
	if c.Read(types.TAC) != 0xFD {
		t.Errorf("expected TAC to read 0xFD, got 0x%02X", c.Read(types.TAC))
	}
}
